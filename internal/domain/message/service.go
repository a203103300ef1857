package message

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/clock"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/query"
	"github.com/janhq/agent-memory-store/internal/domain/validation"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
	"github.com/janhq/agent-memory-store/internal/utils/telemetry"
)

// Service implements message upserts, windowed reads and history clearing.
type Service struct {
	repo      Repository
	steps     StepCleaner
	tx        Transactor
	sanitizer *telemetry.Sanitizer
	log       zerolog.Logger
}

// NewService creates a message service.
func NewService(repo Repository, steps StepCleaner, tx Transactor, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		steps:     steps,
		tx:        tx,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "message-service").Logger(),
	}
}

// Add inserts the message or replaces role, parts and metadata of an existing one.
func (s *Service) Add(ctx context.Context, params AddParams) (AddResult, error) {
	if err := validation.Struct(ctx, params, "6f1c2d9e-0b4a-4c37-9e58-1a2b3c4d5e60"); err != nil {
		return AddResult{}, err
	}
	return s.upsert(ctx, params, clock.Now())
}

// AddMany applies Add to each entry in order. Every entry is validated before the first write;
// the writes themselves are independent, so a failure leaves earlier entries applied.
func (s *Service) AddMany(ctx context.Context, batch []AddParams) ([]AddResult, error) {
	for i := range batch {
		if err := validation.Struct(ctx, batch[i], "7a2d3e0f-1c5b-4d48-8f69-2b3c4d5e6f71"); err != nil {
			return nil, err
		}
	}

	now := clock.Now()
	results := make([]AddResult, 0, len(batch))
	for _, params := range batch {
		result, err := s.upsert(ctx, params, now)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Service) upsert(ctx context.Context, params AddParams, now time.Time) (AddResult, error) {
	result := AddResult{ID: params.ID}
	parts := params.Parts
	if parts == nil {
		parts = []Part{}
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByVisibleID(ctx, params.ID)
		switch {
		case err == nil:
			existing.Role = params.Role
			existing.Parts = parts
			existing.Metadata = params.Metadata
			result.Updated = true
			return s.repo.Update(ctx, existing)
		case !platformerrors.IsNotFound(err):
			return err
		}

		result.Created = true
		return s.repo.Create(ctx, &Message{
			ID:             params.ID,
			ConversationID: params.ConversationID,
			UserID:         params.UserID,
			Role:           params.Role,
			Parts:          parts,
			Metadata:       params.Metadata,
			CreatedAt:      now,
		})
	})
	if platformerrors.IsAlreadyExists(err) {
		// A concurrent writer inserted the same id first; apply ours as the update.
		return s.replace(ctx, params, parts)
	}
	if err != nil {
		return AddResult{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add message")
	}

	s.log.Debug().
		Str("message_id", params.ID).
		Str("conversation_id", params.ConversationID).
		Str("user_id", s.sanitizer.UserID(params.UserID)).
		Bool("created", result.Created).
		Msg("message stored")
	return result, nil
}

func (s *Service) replace(ctx context.Context, params AddParams, parts []Part) (AddResult, error) {
	existing, err := s.repo.FindByVisibleID(ctx, params.ID)
	if err != nil {
		return AddResult{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add message")
	}
	existing.Role = params.Role
	existing.Parts = parts
	existing.Metadata = params.Metadata
	if err := s.repo.Update(ctx, existing); err != nil {
		return AddResult{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add message")
	}
	return AddResult{ID: params.ID, Updated: true}, nil
}

// Get returns the most recent messages of a user in a conversation, oldest first.
// Absence is never an error.
func (s *Service) Get(ctx context.Context, params GetParams) ([]*Message, error) {
	if err := validation.Struct(ctx, params, "8b3e4f1a-2d6c-4e59-9a7b-3c4d5e6f7a82"); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	latest, err := s.repo.ListLatest(ctx, Filter{
		ConversationID: params.ConversationID,
		UserID:         params.UserID,
		Roles:          query.TrimSpaceAll(params.Roles),
		Before:         params.Before,
		After:          params.After,
		Limit:          limit,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get messages")
	}

	messages := query.Reverse(latest)
	for _, m := range messages {
		m.Metadata = withCreatedAt(m.Metadata, m.CreatedAt)
	}
	return messages, nil
}

// Clear deletes a user's messages and steps, either in one conversation or across every
// conversation the user owns. Conversations are kept.
func (s *Service) Clear(ctx context.Context, userID, conversationID string) (ClearResult, error) {
	if userID == "" {
		return ClearResult{}, validation.Failed(ctx, "userId is required", "9c4f5a2b-3e7d-4f6a-8b8c-4d5e6f7a8b93")
	}

	var result ClearResult
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if conversationID != "" {
			if result.Messages, err = s.repo.DeleteByConversationAndUser(ctx, conversationID, userID); err != nil {
				return err
			}
			result.Steps, err = s.steps.DeleteByConversationAndUser(ctx, conversationID, userID)
			return err
		}
		if result.Messages, err = s.repo.DeleteByConversationOwner(ctx, userID); err != nil {
			return err
		}
		result.Steps, err = s.steps.DeleteByConversationOwner(ctx, userID)
		return err
	})
	if err != nil {
		return ClearResult{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to clear messages")
	}

	result.Success = true
	s.log.Info().
		Str("user_id", s.sanitizer.UserID(userID)).
		Str("conversation_id", conversationID).
		Int64("messages", result.Messages).
		Int64("steps", result.Steps).
		Msg("message history cleared")
	return result, nil
}

func withCreatedAt(metadata jsonvalue.Map, createdAt time.Time) jsonvalue.Map {
	out := metadata.Clone()
	if out == nil {
		out = jsonvalue.Map{}
	}
	out[CreatedAtKey] = jsonvalue.String(clock.FormatISO(createdAt))
	return out
}
