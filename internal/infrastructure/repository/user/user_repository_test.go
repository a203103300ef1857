package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
	"github.com/janhq/agent-memory-store/internal/domain/user"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/repositorytest"
	userrepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/user"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

func conversationScope(id string) workingmemory.Params {
	return workingmemory.Params{Scope: workingmemory.ScopeConversation, ConversationID: id}
}

func userScope(id string) workingmemory.Params {
	return workingmemory.Params{Scope: workingmemory.ScopeUser, UserID: id}
}

func TestUserScopeCreatesUserOnFirstWrite(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	empty, err := s.WorkingMemory.Get(ctx, userScope("u1"))
	require.NoError(t, err)
	assert.Nil(t, empty)

	result, err := s.WorkingMemory.Set(ctx, workingmemory.SetParams{Params: userScope("u1"), Content: "# Profile\nlikes tea"})
	require.NoError(t, err)
	assert.True(t, result.Success)

	u, err := userrepo.NewUserGormRepository(s.DB).FindByVisibleID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "# Profile\nlikes tea", u.Metadata[conversation.WorkingMemoryKey].Str())

	got, err := s.WorkingMemory.Get(ctx, userScope("u1"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "# Profile\nlikes tea", *got)

	_, err = s.WorkingMemory.Set(ctx, workingmemory.SetParams{Params: userScope("u1"), Content: "updated"})
	require.NoError(t, err)
	got, err = s.WorkingMemory.Get(ctx, userScope("u1"))
	require.NoError(t, err)
	assert.Equal(t, "updated", *got)
}

func TestConversationScopeKeepsOtherMetadata(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)
	_, err := s.Conversations.Create(ctx, conversation.CreateParams{
		ID:       "c1",
		UserID:   "u1",
		Metadata: jsonvalue.Map{"topic": jsonvalue.String("travel")},
	})
	require.NoError(t, err)

	_, err = s.WorkingMemory.Set(ctx, workingmemory.SetParams{Params: conversationScope("c1"), Content: "notes"})
	require.NoError(t, err)

	conv, err := s.Conversations.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "travel", conv.Metadata["topic"].Str())
	content, ok := conv.WorkingMemory()
	require.True(t, ok)
	assert.Equal(t, "notes", content)

	result, err := s.WorkingMemory.Remove(ctx, conversationScope("c1"))
	require.NoError(t, err)
	assert.True(t, result.Success)

	conv, err = s.Conversations.Get(ctx, "c1")
	require.NoError(t, err)
	_, ok = conv.WorkingMemory()
	assert.False(t, ok)
	assert.Equal(t, "travel", conv.Metadata["topic"].Str())
}

func TestConversationScopeRequiresConversation(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	_, err := s.WorkingMemory.Set(ctx, workingmemory.SetParams{Params: conversationScope("missing"), Content: "x"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsNotFound(err))

	got, err := s.WorkingMemory.Get(ctx, conversationScope("missing"))
	require.NoError(t, err)
	assert.Nil(t, got)

	result, err := s.WorkingMemory.Remove(ctx, conversationScope("missing"))
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)
	_, err := s.Conversations.Create(ctx, conversation.CreateParams{ID: "c1", UserID: "u1"})
	require.NoError(t, err)

	_, err = s.WorkingMemory.Set(ctx, workingmemory.SetParams{Params: conversationScope("c1"), Content: "conversation notes"})
	require.NoError(t, err)
	_, err = s.WorkingMemory.Set(ctx, workingmemory.SetParams{Params: userScope("u1"), Content: "user notes"})
	require.NoError(t, err)

	conv, err := s.WorkingMemory.Get(ctx, conversationScope("c1"))
	require.NoError(t, err)
	assert.Equal(t, "conversation notes", *conv)
	usr, err := s.WorkingMemory.Get(ctx, userScope("u1"))
	require.NoError(t, err)
	assert.Equal(t, "user notes", *usr)

	_, err = s.WorkingMemory.Remove(ctx, userScope("u1"))
	require.NoError(t, err)

	usr, err = s.WorkingMemory.Get(ctx, userScope("u1"))
	require.NoError(t, err)
	assert.Nil(t, usr)
	conv, err = s.WorkingMemory.Get(ctx, conversationScope("c1"))
	require.NoError(t, err)
	assert.Equal(t, "conversation notes", *conv)
}

func TestUnsatisfiedScopeIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := repositorytest.New(t)

	tests := []struct {
		name   string
		params workingmemory.Params
	}{
		{name: "conversation scope without id", params: workingmemory.Params{Scope: workingmemory.ScopeConversation, UserID: "u1"}},
		{name: "user scope without id", params: workingmemory.Params{Scope: workingmemory.ScopeUser, ConversationID: "c1"}},
		{name: "unknown scope", params: workingmemory.Params{Scope: "team", UserID: "u1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.WorkingMemory.Set(ctx, workingmemory.SetParams{Params: tt.params, Content: "x"})
			require.NoError(t, err)
			assert.False(t, result.Success)

			got, err := s.WorkingMemory.Get(ctx, tt.params)
			require.NoError(t, err)
			assert.Nil(t, got)

			removed, err := s.WorkingMemory.Remove(ctx, tt.params)
			require.NoError(t, err)
			assert.False(t, removed.Success)
		})
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewUserGormRepository(repositorytest.New(t).DB)

	_, err := repo.FindByVisibleID(ctx, "ghost")
	assert.True(t, platformerrors.IsNotFound(err))

	err = repo.Update(ctx, &user.User{ID: "ghost", Metadata: jsonvalue.Map{}})
	assert.True(t, platformerrors.IsNotFound(err))

	require.NoError(t, repo.Create(ctx, &user.User{ID: "u1"}))
	err = repo.Create(ctx, &user.User{ID: "u1"})
	assert.True(t, platformerrors.IsAlreadyExists(err))
}
