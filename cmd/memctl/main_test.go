package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/httpservertest"
)

type fixture struct {
	*httpservertest.Server
	url string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := httpservertest.New(t)
	ts := httptest.NewServer(srv.HTTP.Handler())
	t.Cleanup(ts.Close)
	return &fixture{Server: srv, url: ts.URL}
}

func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--server", f.url}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.Conversations.Create(ctx, conversation.CreateParams{ID: "c1", UserID: "u1", ResourceID: "r1", Title: "Trip"})
	require.NoError(t, err)
	_, err = f.Messages.Add(ctx, message.AddParams{
		ID: "m1", ConversationID: "c1", UserID: "u1", Role: "user",
		Parts: []message.Part{message.TextPart("hello")},
	})
	require.NoError(t, err)
	_, err = f.Workflows.Set(ctx, "e1", workflow.State{
		WorkflowID: "w1", WorkflowName: "research", Status: workflow.StatusSuspended, Input: jsonvalue.String("q"),
	})
	require.NoError(t, err)
}

func TestConversationsCommands(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	out, err := f.run(t, "", "conversations", "get", "c1")
	require.NoError(t, err)
	var conv map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &conv))
	assert.Equal(t, "c1", conv["id"])
	assert.Equal(t, "Trip", conv["title"])

	out, err = f.run(t, "", "-o", "json", "conversations", "list", "--user", "u1")
	require.NoError(t, err)
	var convs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &convs))
	require.Len(t, convs, 1)

	out, err = f.run(t, "", "-o", "table", "conversations", "query", "--resource", "r1")
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Trip")

	_, err = f.run(t, "", "conversations", "list")
	assert.ErrorContains(t, err, "--user or --resource")

	out, err = f.run(t, "", "conversations", "delete", "c1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted conversation c1")

	_, err = f.run(t, "", "conversations", "get", "c1")
	assert.ErrorContains(t, err, "not found")
}

func TestMessagesCommands(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	out, err := f.run(t, "", "-o", "json", "messages", "list", "c1", "--user", "u1", "--role", "user")
	require.NoError(t, err)
	var msgs []message.Message
	require.NoError(t, json.Unmarshal([]byte(out), &msgs))
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Parts[0].Text)

	_, err = f.run(t, "", "messages", "list", "c1", "--user", "u1", "--after", "tomorrow")
	assert.ErrorContains(t, err, "RFC 3339")

	out, err = f.run(t, "", "-o", "json", "messages", "clear", "u1")
	require.NoError(t, err)
	var cleared message.ClearResult
	require.NoError(t, json.Unmarshal([]byte(out), &cleared))
	assert.EqualValues(t, 1, cleared.Messages)
}

func TestMemoryCommands(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "", "memory", "set", "--scope", "user", "--user", "u1", "likes tea")
	require.NoError(t, err)

	out, err := f.run(t, "", "memory", "get", "--scope", "user", "--user", "u1")
	require.NoError(t, err)
	assert.Equal(t, "likes tea\n", out)

	path := filepath.Join(t.TempDir(), "memory.md")
	require.NoError(t, os.WriteFile(path, []byte("# Notes"), 0o600))
	_, err = f.run(t, "", "memory", "set", "--scope", "user", "--user", "u1", "--file", path)
	require.NoError(t, err)

	_, err = f.run(t, "from stdin", "memory", "set", "--scope", "user", "--user", "u2", "--file", "-")
	require.NoError(t, err)
	out, err = f.run(t, "", "-o", "json", "memory", "get", "--scope", "user", "--user", "u2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"from stdin"}`, out)

	_, err = f.run(t, "", "memory", "set", "--scope", "user", "x")
	assert.ErrorContains(t, err, "needs its id flag")

	_, err = f.run(t, "", "memory", "rm", "--scope", "user", "--user", "u1")
	require.NoError(t, err)
	out, err = f.run(t, "", "memory", "get", "--scope", "user", "--user", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "no working memory stored")
}

func TestWorkflowsCommands(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	out, err := f.run(t, "", "-o", "table", "workflows", "suspended", "w1")
	require.NoError(t, err)
	assert.Contains(t, out, "e1")
	assert.Contains(t, out, "SUSPENDED")

	out, err = f.run(t, "", "workflows", "runs", "--workflow", "w1", "--status", "suspended")
	require.NoError(t, err)
	var runs []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "e1", runs[0]["id"])

	_, err = f.run(t, "", "workflows", "runs", "--status", "paused")
	assert.ErrorContains(t, err, "unknown status")

	_, err = f.run(t, "", "workflows", "get", "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestSchemaCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "", "schema", "message")
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "Message", schema["title"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "conversationId")
	assert.Contains(t, props, "parts")

	_, err = f.run(t, "", "schema", "nothing")
	assert.ErrorContains(t, err, "unknown record")
}

func TestRejectsUnknownOutputFormat(t *testing.T) {
	f := newFixture(t)
	_, err := f.run(t, "", "-o", "xml", "schema", "step")
	assert.ErrorContains(t, err, "unsupported output format")
}
