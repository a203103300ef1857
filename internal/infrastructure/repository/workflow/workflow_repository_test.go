package workflow_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/repositorytest"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

var base = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func run(workflowID string, status workflow.Status, minute int) workflow.State {
	return workflow.State{
		WorkflowID:   workflowID,
		WorkflowName: "Onboarding",
		Status:       status,
		Input:        jsonvalue.Object(jsonvalue.Map{"email": jsonvalue.String("a@example.com")}),
		CreatedAt:    base.Add(time.Duration(minute) * time.Minute),
	}
}

func stateIDs(states []*workflow.State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.ID)
	}
	return out
}

func TestSetCreatesAndGetReturnsState(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	state := run("wf", workflow.StatusRunning, 0)
	state.Context = workflow.NewContext().Set("step", jsonvalue.Int(1)).Set("attempt", jsonvalue.Int(0))
	state.UserID = "u1"
	state.ConversationID = "c1"
	result, err := s.Workflows.Set(ctx, "e1", state)
	require.NoError(t, err)
	assert.True(t, result.Success)

	got, err := s.Workflows.Get(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, workflow.StatusRunning, got.Status)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, []string{"step", "attempt"}, got.Context.Keys())
	assert.True(t, state.Input.Equal(got.Input))
	assert.True(t, base.Equal(got.CreatedAt))

	missing, err := s.Workflows.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSetReplacesButKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	first := run("wf", workflow.StatusSuspended, 0)
	first.Suspension = &workflow.Suspension{SuspendedAt: base, Reason: "needs approval"}
	first.Metadata = jsonvalue.Map{"k": jsonvalue.String("v")}
	_, err := s.Workflows.Set(ctx, "e1", first)
	require.NoError(t, err)

	second := run("wf", workflow.StatusCompleted, 30)
	second.Output = jsonvalue.String("done")
	_, err = s.Workflows.Set(ctx, "e1", second)
	require.NoError(t, err)

	got, err := s.Workflows.Get(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, workflow.StatusCompleted, got.Status)
	assert.Nil(t, got.Suspension)
	assert.Nil(t, got.Metadata)
	assert.Equal(t, "done", got.Output.Str())
	assert.True(t, base.Equal(got.CreatedAt))
}

func TestSetValidatesState(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	bad := run("wf", workflow.Status("paused"), 0)
	_, err := s.Workflows.Set(ctx, "e1", bad)
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	noName := run("wf", workflow.StatusRunning, 0)
	noName.WorkflowName = ""
	_, err = s.Workflows.Set(ctx, "e1", noName)
	require.Error(t, err)
}

func TestUpdatePatchesSuppliedFields(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	initial := run("wf", workflow.StatusRunning, 0)
	initial.Metadata = jsonvalue.Map{"k": jsonvalue.String("v")}
	_, err := s.Workflows.Set(ctx, "e1", initial)
	require.NoError(t, err)
	before, err := s.Workflows.Get(ctx, "e1")
	require.NoError(t, err)

	suspended := workflow.StatusSuspended
	idx := 2
	_, err = s.Workflows.Update(ctx, "e1", workflow.Patch{
		Status: &suspended,
		Suspension: &workflow.Suspension{
			SuspendedAt:        base.Add(time.Minute),
			SuspendedStepIndex: &idx,
			SuspendData:        jsonvalue.Object(jsonvalue.Map{"question": jsonvalue.String("approve?")}),
		},
	})
	require.NoError(t, err)

	got, err := s.Workflows.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusSuspended, got.Status)
	require.NotNil(t, got.Suspension)
	assert.Equal(t, 2, *got.Suspension.SuspendedStepIndex)
	assert.Equal(t, "v", got.Metadata["k"].Str())
	assert.True(t, before.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.UpdatedAt.Before(before.UpdatedAt))
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	s := repositorytest.New(t)
	completed := workflow.StatusCompleted
	_, err := s.Workflows.Update(context.Background(), "missing", workflow.Patch{Status: &completed})
	require.Error(t, err)
	assert.True(t, platformerrors.IsNotFound(err))
}

func TestGetSuspended(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	_, err := s.Workflows.Set(ctx, "e1", run("wf", workflow.StatusRunning, 1))
	require.NoError(t, err)
	_, err = s.Workflows.Set(ctx, "e2", run("wf", workflow.StatusSuspended, 2))
	require.NoError(t, err)
	_, err = s.Workflows.Set(ctx, "e3", run("wf", workflow.StatusSuspended, 3))
	require.NoError(t, err)
	_, err = s.Workflows.Set(ctx, "other", run("wf-2", workflow.StatusSuspended, 4))
	require.NoError(t, err)

	suspended, err := s.Workflows.GetSuspended(ctx, "wf")
	require.NoError(t, err)
	assert.Equal(t, []string{"e3", "e2"}, stateIDs(suspended))

	running := workflow.StatusRunning
	_, err = s.Workflows.Update(ctx, "e3", workflow.Patch{Status: &running})
	require.NoError(t, err)

	suspended, err = s.Workflows.GetSuspended(ctx, "wf")
	require.NoError(t, err)
	assert.Equal(t, []string{"e2"}, stateIDs(suspended))

	_, err = s.Workflows.GetSuspended(ctx, "")
	require.Error(t, err)
}

func TestQueryRuns(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	statuses := []workflow.Status{
		workflow.StatusRunning, workflow.StatusCompleted, workflow.StatusCompleted,
		workflow.StatusError, workflow.StatusCompleted,
	}
	for i, status := range statuses {
		_, err := s.Workflows.Set(ctx, fmt.Sprintf("e%d", i), run("wf", status, i))
		require.NoError(t, err)
	}
	_, err := s.Workflows.Set(ctx, "x", run("wf-other", workflow.StatusCompleted, 10))
	require.NoError(t, err)

	from := base.Add(1 * time.Minute)
	to := base.Add(3 * time.Minute)

	tests := []struct {
		name   string
		params workflow.QueryRunsParams
		want   []string
	}{
		{name: "everything", params: workflow.QueryRunsParams{}, want: []string{"x", "e4", "e3", "e2", "e1", "e0"}},
		{name: "by workflow", params: workflow.QueryRunsParams{WorkflowID: "wf"}, want: []string{"e4", "e3", "e2", "e1", "e0"}},
		{name: "by status", params: workflow.QueryRunsParams{WorkflowID: "wf", Status: workflow.StatusCompleted}, want: []string{"e4", "e2", "e1"}},
		{name: "inclusive window", params: workflow.QueryRunsParams{From: &from, To: &to}, want: []string{"e3", "e2", "e1"}},
		{name: "inverted window", params: workflow.QueryRunsParams{From: &to, To: &from}, want: []string{}},
		{name: "paged", params: workflow.QueryRunsParams{WorkflowID: "wf", Limit: intPtr(2), Offset: 1}, want: []string{"e3", "e2"}},
		{name: "zero limit", params: workflow.QueryRunsParams{WorkflowID: "wf", Limit: intPtr(0)}, want: []string{}},
		{name: "offset only", params: workflow.QueryRunsParams{WorkflowID: "wf", Offset: 3}, want: []string{"e1", "e0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states, err := s.Workflows.QueryRuns(ctx, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stateIDs(states))
		})
	}

	_, err = s.Workflows.QueryRuns(ctx, workflow.QueryRunsParams{Status: "paused"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func intPtr(n int) *int { return &n }
