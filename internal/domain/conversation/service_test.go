package conversation_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/repositorytest"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

func TestCreateRejectsDuplicateID(t *testing.T) {
	svc := repositorytest.New(t).Conversations
	ctx := context.Background()

	conv, err := svc.Create(ctx, conversation.CreateParams{ID: "c1", UserID: "u1", ResourceID: "r1"})
	require.NoError(t, err)
	assert.NotNil(t, conv.Metadata)
	assert.Equal(t, conv.CreatedAt, conv.UpdatedAt)

	_, err = svc.Create(ctx, conversation.CreateParams{ID: "c1", UserID: "u2"})
	assert.True(t, platformerrors.IsAlreadyExists(err))

	_, err = svc.Create(ctx, conversation.CreateParams{})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestUpdateAppliesSparsePatch(t *testing.T) {
	svc := repositorytest.New(t).Conversations
	ctx := context.Background()

	_, err := svc.Create(ctx, conversation.CreateParams{
		ID: "c1", UserID: "u1", ResourceID: "r1", Title: "old",
		Metadata: jsonvalue.Map{"topic": jsonvalue.String("travel")},
	})
	require.NoError(t, err)

	title := "new"
	updated, err := svc.Update(ctx, "c1", conversation.UpdateParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "r1", updated.ResourceID)
	assert.Equal(t, "travel", updated.Metadata["topic"].Str())
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	_, err = svc.Update(ctx, "missing", conversation.UpdateParams{Title: &title})
	assert.True(t, platformerrors.IsNotFound(err))
}

func TestRemoveDeletesMessagesAndSteps(t *testing.T) {
	services := repositorytest.New(t)
	ctx := context.Background()

	_, err := services.Conversations.Create(ctx, conversation.CreateParams{ID: "c1", UserID: "u1"})
	require.NoError(t, err)
	_, err = services.Messages.Add(ctx, message.AddParams{
		ID: "m1", ConversationID: "c1", UserID: "u1", Role: "user",
		Parts: []message.Part{message.TextPart("hi")},
	})
	require.NoError(t, err)
	_, err = services.Steps.Save(ctx, []step.Step{{
		ID: "s1", ConversationID: "c1", UserID: "u1", AgentID: "a1", Type: "text", Role: "assistant",
	}})
	require.NoError(t, err)

	require.NoError(t, services.Conversations.Remove(ctx, "c1"))

	conv, err := services.Conversations.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, conv)

	msgs, err := services.Messages.Get(ctx, message.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, msgs)

	steps, err := services.Steps.Get(ctx, step.GetParams{UserID: "u1", ConversationID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, steps)

	err = services.Conversations.Remove(ctx, "c1")
	assert.True(t, platformerrors.IsNotFound(err))
}

func TestQueryWithoutFiltersIsBounded(t *testing.T) {
	svc := repositorytest.New(t, repositorytest.WithScanLimit(2)).Conversations
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, conversation.CreateParams{ID: fmt.Sprintf("c%d", i), UserID: "u1"})
		require.NoError(t, err)
	}

	all, err := svc.Query(ctx, conversation.Filter{}, conversation.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byUser, err := svc.Query(ctx, conversation.Filter{UserID: "u1"}, conversation.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, byUser, 3)
}
