package stephandler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/httpservertest"
)

func stepBody(id string, index int, operation string) map[string]any {
	return map[string]any{
		"id":             id,
		"conversationId": "c1",
		"userId":         "u1",
		"agentId":        "planner",
		"operationId":    operation,
		"stepIndex":      index,
		"type":           "text",
		"role":           "assistant",
		"content":        "step " + id,
		"usage":          map[string]any{"promptTokens": 10, "completionTokens": 4},
	}
}

func getSteps(t *testing.T, srv *httpservertest.Server, query string) []step.Step {
	t.Helper()
	rec := srv.Do(t, http.MethodGet, "/v1/conversations/c1/steps?"+query, nil)
	httpservertest.StatusOK(t, rec)
	var list struct {
		Data []step.Step `json:"data"`
	}
	httpservertest.Decode(t, rec, &list)
	return list.Data
}

func stepIDs(steps []step.Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.ID)
	}
	return out
}

func TestSaveAndGetSteps(t *testing.T) {
	srv := httpservertest.New(t)

	rec := srv.Do(t, http.MethodPost, "/v1/steps", map[string]any{
		"steps": []map[string]any{
			stepBody("s2", 2, "op1"),
			stepBody("s0", 0, "op1"),
			stepBody("s1", 1, "op2"),
		},
	})
	httpservertest.StatusOK(t, rec)
	assert.JSONEq(t, `{"success":true,"count":3}`, rec.Body.String())

	assert.Equal(t, []string{"s0", "s1", "s2"}, stepIDs(getSteps(t, srv, "user_id=u1")))
	assert.Equal(t, []string{"s1", "s2"}, stepIDs(getSteps(t, srv, "user_id=u1&limit=2")))
	assert.Equal(t, []string{"s0", "s2"}, stepIDs(getSteps(t, srv, "user_id=u1&operation_id=op1")))

	steps := getSteps(t, srv, "user_id=u1&limit=1")
	require.Len(t, steps, 1)
	require.NotNil(t, steps[0].Usage)
	require.NotNil(t, steps[0].Usage.PromptTokens)
	assert.Equal(t, 10, *steps[0].Usage.PromptTokens)
}

func TestSaveStepsValidation(t *testing.T) {
	srv := httpservertest.New(t)

	bad := stepBody("s1", 1, "")
	delete(bad, "agentId")
	rec := srv.Do(t, http.MethodPost, "/v1/steps", map[string]any{
		"steps": []map[string]any{stepBody("s0", 0, ""), bad},
	})
	httpservertest.RequireError(t, rec, http.StatusBadRequest)
	assert.Empty(t, getSteps(t, srv, "user_id=u1"))

	httpservertest.RequireError(t, srv.Do(t, http.MethodGet, "/v1/conversations/c1/steps", nil), http.StatusBadRequest)
	httpservertest.RequireError(t, srv.Do(t, http.MethodGet, "/v1/conversations/c1/steps?user_id=u1&limit=x", nil), http.StatusBadRequest)
}
