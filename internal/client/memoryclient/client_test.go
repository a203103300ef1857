package memoryclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/client/memoryclient"
	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/httpservertest"
)

func newClient(t *testing.T) *memoryclient.Client {
	t.Helper()
	srv := httpservertest.New(t)
	ts := httptest.NewServer(srv.HTTP.Handler())
	t.Cleanup(ts.Close)
	return memoryclient.NewClient(ts.URL, memoryclient.WithTimeout(5*time.Second))
}

func TestConversationLifecycleOverHTTP(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)
	require.NoError(t, client.Ready(ctx))

	conv, err := client.CreateConversation(ctx, conversation.CreateParams{
		ID:         "c1",
		ResourceID: "r1",
		UserID:     "u1",
		Title:      "T",
		Metadata:   jsonvalue.Map{},
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", conv.ID)

	added, err := client.AddMessage(ctx, message.AddParams{
		ID:             "m1",
		ConversationID: "c1",
		UserID:         "u1",
		Role:           "user",
		Parts:          []message.Part{message.TextPart("hi")},
	})
	require.NoError(t, err)
	assert.True(t, added.Created)

	msgs, err := client.GetMessages(ctx, message.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].Parts, 1)
	assert.Equal(t, message.PartType("text"), msgs[0].Parts[0].Type)
	assert.Equal(t, "hi", msgs[0].Parts[0].Text)

	require.NoError(t, client.DeleteConversation(ctx, "c1"))

	gone, err := client.GetConversation(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	msgs, err = client.GetMessages(ctx, message.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestErrorsMatchSentinels(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	_, err := client.CreateConversation(ctx, conversation.CreateParams{ID: "c1"})
	require.NoError(t, err)

	_, err = client.CreateConversation(ctx, conversation.CreateParams{ID: "c1"})
	assert.ErrorIs(t, err, memoryclient.ErrAlreadyExists)

	var apiErr *memoryclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.RequestID)

	title := "x"
	_, err = client.UpdateConversation(ctx, "missing", conversation.UpdateParams{Title: &title})
	assert.ErrorIs(t, err, memoryclient.ErrNotFound)
	assert.NotErrorIs(t, err, memoryclient.ErrValidation)

	_, err = client.GetMessages(ctx, message.GetParams{ConversationID: "c1"})
	assert.ErrorIs(t, err, memoryclient.ErrValidation)
}

func TestAddMessageGeneratesID(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	res, err := client.AddMessage(ctx, message.AddParams{
		ConversationID: "c1",
		UserID:         "u1",
		Role:           "assistant",
		Parts:          []message.Part{message.TextPart("generated")},
	})
	require.NoError(t, err)
	assert.Len(t, res.ID, 36)

	batch, err := client.AddMessages(ctx, []message.AddParams{
		{ConversationID: "c1", UserID: "u1", Role: "user", Parts: []message.Part{message.TextPart("a")}},
		{ID: "fixed", ConversationID: "c1", UserID: "u1", Role: "user", Parts: []message.Part{message.TextPart("b")}},
	})
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.NotEmpty(t, batch[0].ID)
	assert.Equal(t, "fixed", batch[1].ID)

	msgs, err := client.GetMessages(ctx, message.GetParams{UserID: "u1", ConversationID: "c1", Roles: []string{"user"}})
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestStepsAndWorkingMemory(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	saved, err := client.SaveSteps(ctx, []step.Step{
		{ID: "s1", ConversationID: "c1", UserID: "u1", AgentID: "a", StepIndex: 1, Type: "tool_call", Role: "assistant", OperationID: "op"},
		{ID: "s0", ConversationID: "c1", UserID: "u1", AgentID: "a", StepIndex: 0, Type: "text", Role: "assistant", OperationID: "op"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Count)

	steps, err := client.GetSteps(ctx, step.GetParams{UserID: "u1", ConversationID: "c1", OperationID: "op"})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "s0", steps[0].ID)

	userScope := workingmemory.Params{Scope: workingmemory.ScopeUser, UserID: "u1"}
	content, err := client.GetWorkingMemory(ctx, userScope)
	require.NoError(t, err)
	assert.Nil(t, content)

	res, err := client.SetWorkingMemory(ctx, workingmemory.SetParams{Params: userScope, Content: "likes tea"})
	require.NoError(t, err)
	assert.True(t, res.Success)

	content, err = client.GetWorkingMemory(ctx, userScope)
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "likes tea", *content)

	_, err = client.SetWorkingMemory(ctx, workingmemory.SetParams{
		Params:  workingmemory.Params{Scope: workingmemory.ScopeConversation, ConversationID: "nope"},
		Content: "x",
	})
	assert.ErrorIs(t, err, memoryclient.ErrNotFound)

	res, err = client.RemoveWorkingMemory(ctx, userScope)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestWorkflowStates(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	state := workflow.State{
		WorkflowID:   "w1",
		WorkflowName: "research",
		Status:       workflow.StatusRunning,
		Input:        jsonvalue.String("tides"),
		Context:      workflow.NewContext().Set("step", jsonvalue.Int(1)),
	}
	_, err := client.SetWorkflowState(ctx, "e1", state)
	require.NoError(t, err)

	suspended := workflow.StatusSuspended
	_, err = client.UpdateWorkflowState(ctx, "e1", workflow.Patch{
		Status:     &suspended,
		Suspension: &workflow.Suspension{SuspendedAt: time.Now().UTC(), Reason: "approval"},
	})
	require.NoError(t, err)

	got, err := client.GetWorkflowState(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, workflow.StatusSuspended, got.Status)
	require.NotNil(t, got.Suspension)
	assert.Equal(t, "approval", got.Suspension.Reason)

	runs, err := client.GetSuspendedWorkflows(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, runs, 1)

	runs, err = client.QueryWorkflowRuns(ctx, workflow.QueryRunsParams{WorkflowID: "w1", Status: workflow.StatusRunning})
	require.NoError(t, err)
	assert.Empty(t, runs)

	zero := 0
	runs, err = client.QueryWorkflowRuns(ctx, workflow.QueryRunsParams{WorkflowID: "w1", Limit: &zero})
	require.NoError(t, err)
	assert.Empty(t, runs)

	runs, err = client.QueryWorkflowRuns(ctx, workflow.QueryRunsParams{WorkflowID: "w1"})
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	missing, err := client.GetWorkflowState(ctx, "e404")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = client.UpdateWorkflowState(ctx, "e404", workflow.Patch{Status: &suspended})
	assert.ErrorIs(t, err, memoryclient.ErrNotFound)
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"message":"warming up","type":"internal_error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}))
	t.Cleanup(ts.Close)

	client := memoryclient.NewClient(ts.URL, memoryclient.WithRetry(3, time.Millisecond))
	require.NoError(t, client.Ready(context.Background()))
	assert.EqualValues(t, 3, calls.Load())

	calls.Store(-10)
	noRetry := memoryclient.NewClient(ts.URL)
	err := noRetry.Ready(context.Background())
	var apiErr *memoryclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "warming up", apiErr.Message)
}
