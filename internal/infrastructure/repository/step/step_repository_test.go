package step_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/repositorytest"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

func newStep(id string, index int, operationID string) step.Step {
	return step.Step{
		ID:             id,
		ConversationID: "c1",
		UserID:         "u1",
		AgentID:        "agent-1",
		AgentName:      "Planner",
		OperationID:    operationID,
		StepIndex:      index,
		Type:           "text",
		Role:           "assistant",
	}
}

func stepIDs(steps []*step.Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.ID)
	}
	return out
}

func intPtr(n int) *int { return &n }

func TestSaveAndGetOrderedByIndex(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	result, err := s.Steps.Save(ctx, []step.Step{
		newStep("s2", 2, "op-a"),
		newStep("s0", 0, "op-a"),
		newStep("s1", 1, "op-b"),
		newStep("s3", 3, "op-b"),
	})
	require.NoError(t, err)
	assert.Equal(t, step.SaveResult{Success: true, Count: 4}, result)

	all, err := s.Steps.Get(ctx, step.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s0", "s1", "s2", "s3"}, stepIDs(all))

	last, err := s.Steps.Get(ctx, step.GetParams{UserID: "u1", ConversationID: "c1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s3"}, stepIDs(last))

	byOperation, err := s.Steps.Get(ctx, step.GetParams{UserID: "u1", ConversationID: "c1", OperationID: "op-b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s3"}, stepIDs(byOperation))

	otherUser, err := s.Steps.Get(ctx, step.GetParams{UserID: "u2", ConversationID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, otherUser)
}

func TestSaveUpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	original := newStep("s1", 0, "op")
	original.CreatedAt = time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	_, err := s.Steps.Save(ctx, []step.Step{original})
	require.NoError(t, err)

	content := "final answer"
	replacement := newStep("s1", 4, "op")
	replacement.Type = "tool_result"
	replacement.Content = &content
	replacement.Arguments = jsonvalue.Map{"city": jsonvalue.String("Hanoi")}
	replacement.Result = jsonvalue.Object(jsonvalue.Map{"ok": jsonvalue.Bool(true)})
	replacement.Usage = &step.Usage{PromptTokens: intPtr(10), TotalTokens: intPtr(15)}
	replacement.UserID = "someone-else"
	replacement.CreatedAt = time.Now()
	_, err = s.Steps.Save(ctx, []step.Step{replacement})
	require.NoError(t, err)

	steps, err := s.Steps.Get(ctx, step.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	require.Len(t, steps, 1)
	got := steps[0]
	assert.Equal(t, 4, got.StepIndex)
	assert.Equal(t, "tool_result", got.Type)
	require.NotNil(t, got.Content)
	assert.Equal(t, "final answer", *got.Content)
	assert.Equal(t, "Hanoi", got.Arguments["city"].Str())
	assert.True(t, jsonvalue.Object(jsonvalue.Map{"ok": jsonvalue.Bool(true)}).Equal(got.Result))
	require.NotNil(t, got.Usage)
	assert.Equal(t, 10, *got.Usage.PromptTokens)
	assert.Nil(t, got.Usage.CompletionTokens)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, original.CreatedAt.Truncate(time.Millisecond).Equal(got.CreatedAt))
}

func TestSaveClearsOmittedFields(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	content := "draft"
	first := newStep("s1", 0, "op")
	first.Content = &content
	first.SubAgentID = "sub"
	_, err := s.Steps.Save(ctx, []step.Step{first})
	require.NoError(t, err)

	_, err = s.Steps.Save(ctx, []step.Step{newStep("s1", 0, "")})
	require.NoError(t, err)

	steps, err := s.Steps.Get(ctx, step.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Nil(t, steps[0].Content)
	assert.Empty(t, steps[0].SubAgentID)
	assert.Empty(t, steps[0].OperationID)
}

func TestSaveValidatesWholeBatch(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	bad := newStep("s2", 1, "")
	bad.AgentID = ""
	_, err := s.Steps.Save(ctx, []step.Step{newStep("s1", 0, ""), bad})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	steps, err := s.Steps.Get(ctx, step.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, steps)
}
