package workflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/repositorytest"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

func running(workflowID string) workflow.State {
	return workflow.State{
		WorkflowID:   workflowID,
		WorkflowName: "research",
		Status:       workflow.StatusRunning,
		Input:        jsonvalue.String("question"),
	}
}

func TestSetKeepsCreatedAtOnReplace(t *testing.T) {
	svc := repositorytest.New(t).Workflows
	ctx := context.Background()

	first := running("w1")
	first.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	_, err := svc.Set(ctx, "e1", first)
	require.NoError(t, err)

	replaced := running("w1")
	replaced.Status = workflow.StatusCompleted
	replaced.Output = jsonvalue.Int(42)
	replaced.CreatedAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Set(ctx, "e1", replaced)
	require.NoError(t, err)

	got, err := svc.Get(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, workflow.StatusCompleted, got.Status)
	assert.True(t, got.Output.Equal(jsonvalue.Int(42)))
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))

	_, err = svc.Set(ctx, "e2", workflow.State{WorkflowID: "w1"})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestUpdatePatchesSuppliedFields(t *testing.T) {
	svc := repositorytest.New(t).Workflows
	ctx := context.Background()

	_, err := svc.Set(ctx, "e1", running("w1"))
	require.NoError(t, err)
	before, err := svc.Get(ctx, "e1")
	require.NoError(t, err)

	suspended := workflow.StatusSuspended
	_, err = svc.Update(ctx, "e1", workflow.Patch{
		Status:     &suspended,
		Suspension: &workflow.Suspension{SuspendedAt: time.Now().UTC(), Reason: "approval"},
	})
	require.NoError(t, err)

	after, err := svc.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusSuspended, after.Status)
	assert.Equal(t, "approval", after.Suspension.Reason)
	assert.Equal(t, "question", after.Input.Str())
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))

	_, err = svc.Update(ctx, "missing", workflow.Patch{Status: &suspended})
	assert.True(t, platformerrors.IsNotFound(err))
}

func TestQueryRunsAndSuspended(t *testing.T) {
	svc := repositorytest.New(t).Workflows
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, status := range []workflow.Status{workflow.StatusSuspended, workflow.StatusRunning, workflow.StatusSuspended} {
		state := running("w1")
		state.Status = status
		state.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := svc.Set(ctx, []string{"e0", "e1", "e2"}[i], state)
		require.NoError(t, err)
	}
	other := running("w2")
	other.Status = workflow.StatusSuspended
	_, err := svc.Set(ctx, "x0", other)
	require.NoError(t, err)

	suspended, err := svc.GetSuspended(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, suspended, 2)
	assert.Equal(t, "e2", suspended[0].ID)
	assert.Equal(t, "e0", suspended[1].ID)

	from := base.Add(30 * time.Minute)
	runs, err := svc.QueryRuns(ctx, workflow.QueryRunsParams{WorkflowID: "w1", From: &from})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "e2", runs[0].ID)

	to := base
	runs, err = svc.QueryRuns(ctx, workflow.QueryRunsParams{From: &from, To: &to})
	require.NoError(t, err)
	assert.Empty(t, runs)

	zero := 0
	runs, err = svc.QueryRuns(ctx, workflow.QueryRunsParams{WorkflowID: "w1", Limit: &zero})
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)

	runs, err = svc.QueryRuns(ctx, workflow.QueryRunsParams{WorkflowID: "w1"})
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	_, err = svc.GetSuspended(ctx, "")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}
