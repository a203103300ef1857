package workingmemoryhandler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/httpservertest"
)

func TestUserScopedWorkingMemory(t *testing.T) {
	srv := httpservertest.New(t)

	rec := srv.Do(t, http.MethodGet, "/v1/working-memory?scope=user&user_id=u1", nil)
	httpservertest.StatusOK(t, rec)
	assert.JSONEq(t, `{"data":null}`, rec.Body.String())

	rec = srv.Do(t, http.MethodPut, "/v1/working-memory", map[string]any{
		"scope":   "user",
		"userId":  "u1",
		"content": "# Profile\n- prefers metric units",
	})
	httpservertest.StatusOK(t, rec)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = srv.Do(t, http.MethodGet, "/v1/working-memory?scope=user&user_id=u1", nil)
	httpservertest.StatusOK(t, rec)
	var got struct {
		Data *string `json:"data"`
	}
	httpservertest.Decode(t, rec, &got)
	require.NotNil(t, got.Data)
	assert.Equal(t, "# Profile\n- prefers metric units", *got.Data)

	rec = srv.Do(t, http.MethodDelete, "/v1/working-memory?scope=user&user_id=u1", nil)
	httpservertest.StatusOK(t, rec)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = srv.Do(t, http.MethodGet, "/v1/working-memory?scope=user&user_id=u1", nil)
	assert.JSONEq(t, `{"data":null}`, rec.Body.String())
}

func TestConversationScopedWorkingMemory(t *testing.T) {
	srv := httpservertest.New(t)

	rec := srv.Do(t, http.MethodPut, "/v1/working-memory", map[string]any{
		"scope":          "conversation",
		"conversationId": "c1",
		"content":        "notes",
	})
	httpservertest.RequireError(t, rec, http.StatusNotFound)

	rec = srv.Do(t, http.MethodPost, "/v1/conversations", map[string]any{"id": "c1", "metadata": map[string]any{"topic": "travel"}})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.Do(t, http.MethodPut, "/v1/working-memory", map[string]any{
		"scope":          "conversation",
		"conversationId": "c1",
		"content":        "notes",
	})
	httpservertest.StatusOK(t, rec)

	rec = srv.Do(t, http.MethodGet, "/v1/working-memory?scope=conversation&conversation_id=c1", nil)
	assert.JSONEq(t, `{"data":"notes"}`, rec.Body.String())

	rec = srv.Do(t, http.MethodGet, "/v1/conversations/c1", nil)
	assert.JSONEq(t, `"travel"`, extractTopic(t, rec.Body.Bytes()))
}

func TestUnsatisfiedScope(t *testing.T) {
	srv := httpservertest.New(t)

	rec := srv.Do(t, http.MethodPut, "/v1/working-memory", map[string]any{"scope": "user", "content": "x"})
	httpservertest.StatusOK(t, rec)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())

	rec = srv.Do(t, http.MethodDelete, "/v1/working-memory?scope=galaxy&user_id=u1", nil)
	httpservertest.StatusOK(t, rec)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())

	rec = srv.Do(t, http.MethodGet, "/v1/working-memory?scope=conversation&user_id=u1", nil)
	assert.JSONEq(t, `{"data":null}`, rec.Body.String())
}

func extractTopic(t *testing.T, body []byte) string {
	t.Helper()
	var conv struct {
		Data struct {
			Metadata map[string]json.RawMessage `json:"metadata"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &conv))
	return string(conv.Data.Metadata["topic"])
}
