// Package workingmemory stores a single text blob per conversation or per user, nested in the
// owner's metadata under the workingMemory key.
package workingmemory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/clock"
	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/user"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
	"github.com/janhq/agent-memory-store/internal/utils/telemetry"
)

// Scope selects which entity holds the working memory.
type Scope string

const (
	ScopeConversation Scope = "conversation"
	ScopeUser         Scope = "user"
)

// Params identifies the target of a read or remove. Only the id matching Scope is consulted.
type Params struct {
	Scope          Scope  `json:"scope"`
	ConversationID string `json:"conversationId,omitempty"`
	UserID         string `json:"userId,omitempty"`
}

// SetParams carries the content to store.
type SetParams struct {
	Params
	Content string `json:"content"`
}

// Result acknowledges a write. Success is false when the scope is unknown or its id is missing.
type Result struct {
	Success bool `json:"success"`
}

type target int

const (
	targetNone target = iota
	targetConversation
	targetUser
)

func (p Params) target() (target, string) {
	switch {
	case p.Scope == ScopeConversation && p.ConversationID != "":
		return targetConversation, p.ConversationID
	case p.Scope == ScopeUser && p.UserID != "":
		return targetUser, p.UserID
	default:
		return targetNone, ""
	}
}

// Transactor runs fn inside a database transaction carried on the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service reads and writes scoped working memory.
type Service struct {
	conversations conversation.Repository
	users         user.Repository
	tx            Transactor
	sanitizer     *telemetry.Sanitizer
	log           zerolog.Logger
}

// NewService creates a working-memory service.
func NewService(conversations conversation.Repository, users user.Repository, tx Transactor, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *Service {
	return &Service{
		conversations: conversations,
		users:         users,
		tx:            tx,
		sanitizer:     sanitizer,
		log:           log.With().Str("component", "working-memory-service").Logger(),
	}
}

// Get returns the stored content, or nil when the scope is unsatisfied or nothing is stored.
func (s *Service) Get(ctx context.Context, params Params) (*string, error) {
	var metadata jsonvalue.Map
	switch kind, id := params.target(); kind {
	case targetConversation:
		conv, err := s.conversations.FindByVisibleID(ctx, id)
		if platformerrors.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get working memory")
		}
		metadata = conv.Metadata
	case targetUser:
		u, err := s.users.FindByVisibleID(ctx, id)
		if platformerrors.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get working memory")
		}
		metadata = u.Metadata
	default:
		return nil, nil
	}

	content, ok := conversation.WorkingMemoryOf(metadata)
	if !ok {
		return nil, nil
	}
	return &content, nil
}

// Set merges the content into the target's metadata. A missing conversation is NOT_FOUND;
// a missing user is created.
func (s *Service) Set(ctx context.Context, params SetParams) (Result, error) {
	kind, id := params.target()
	if kind == targetNone {
		return Result{Success: false}, nil
	}

	write := func(ctx context.Context) error {
		now := clock.Now()
		if kind == targetConversation {
			conv, err := s.conversations.FindForUpdate(ctx, id)
			if err != nil {
				return err
			}
			conv.Metadata = withContent(conv.Metadata, params.Content)
			conv.UpdatedAt = now
			return s.conversations.Update(ctx, conv)
		}

		u, err := s.users.FindForUpdate(ctx, id)
		if platformerrors.IsNotFound(err) {
			return s.users.Create(ctx, &user.User{
				ID:        id,
				Metadata:  withContent(nil, params.Content),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err != nil {
			return err
		}
		u.Metadata = withContent(u.Metadata, params.Content)
		u.UpdatedAt = now
		return s.users.Update(ctx, u)
	}

	err := s.tx.WithinTransaction(ctx, write)
	if platformerrors.IsAlreadyExists(err) {
		// another writer created the user first; merge into its record
		err = s.tx.WithinTransaction(ctx, write)
	}
	if err != nil {
		return Result{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to set working memory")
	}

	s.log.Debug().
		Str("scope", string(params.Scope)).
		Str("owner", s.owner(kind, id)).
		Str("content", s.sanitizer.Content(params.Content)).
		Msg("working memory set")
	return Result{Success: true}, nil
}

// Remove drops the working memory key. A missing entity or key is a successful no-op.
func (s *Service) Remove(ctx context.Context, params Params) (Result, error) {
	kind, id := params.target()
	if kind == targetNone {
		return Result{Success: false}, nil
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		now := clock.Now()
		if kind == targetConversation {
			conv, err := s.conversations.FindForUpdate(ctx, id)
			if platformerrors.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			if _, ok := conv.Metadata[conversation.WorkingMemoryKey]; !ok {
				return nil
			}
			conv.Metadata = withoutContent(conv.Metadata)
			conv.UpdatedAt = now
			return s.conversations.Update(ctx, conv)
		}

		u, err := s.users.FindForUpdate(ctx, id)
		if platformerrors.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, ok := u.Metadata[conversation.WorkingMemoryKey]; !ok {
			return nil
		}
		u.Metadata = withoutContent(u.Metadata)
		u.UpdatedAt = now
		return s.users.Update(ctx, u)
	})
	if err != nil {
		return Result{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to remove working memory")
	}
	return Result{Success: true}, nil
}

func (s *Service) owner(kind target, id string) string {
	if kind == targetUser {
		return s.sanitizer.UserID(id)
	}
	return id
}

func withContent(metadata jsonvalue.Map, content string) jsonvalue.Map {
	out := metadata.Clone()
	if out == nil {
		out = jsonvalue.Map{}
	}
	out[conversation.WorkingMemoryKey] = jsonvalue.String(content)
	return out
}

func withoutContent(metadata jsonvalue.Map) jsonvalue.Map {
	out := metadata.Clone()
	delete(out, conversation.WorkingMemoryKey)
	return out
}
