package conversation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/clock"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/validation"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// MessageCleaner deletes the messages that reference a conversation by id.
type MessageCleaner interface {
	DeleteByConversation(ctx context.Context, conversationID string) (int64, error)
}

// StepCleaner deletes the steps that reference a conversation by id.
type StepCleaner interface {
	DeleteByConversation(ctx context.Context, conversationID string) (int64, error)
}

// Service implements conversation lifecycle and listing.
type Service struct {
	repo     Repository
	messages MessageCleaner
	steps    StepCleaner
	tx       Transactor
	limits   QueryLimits
	log      zerolog.Logger
}

// NewService creates a conversation service. messages and steps are cleared when a conversation is removed.
func NewService(repo Repository, messages MessageCleaner, steps StepCleaner, tx Transactor, limits QueryLimits, log zerolog.Logger) *Service {
	if limits.UnfilteredScanLimit <= 0 {
		limits.UnfilteredScanLimit = DefaultScanLimit
	}
	return &Service{
		repo:     repo,
		messages: messages,
		steps:    steps,
		tx:       tx,
		limits:   limits,
		log:      log.With().Str("component", "conversation-service").Logger(),
	}
}

// Create inserts a new conversation; an existing id yields a CONFLICT error.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Conversation, error) {
	if err := validation.Struct(ctx, params, "3f7c8d5e-6b0a-4c9d-9ebf-7a8b9cadbec6"); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByVisibleID(ctx, params.ID)
	if err == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeAlreadyExists,
			"conversation already exists", nil, "4a8d9e6f-7c1b-4dae-8fc0-8b9cadbecfd7")
	}
	if !platformerrors.IsNotFound(err) {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}

	metadata := params.Metadata
	if metadata == nil {
		metadata = jsonvalue.Map{}
	}
	now := clock.Now()
	conv := &Conversation{
		ID:         params.ID,
		ResourceID: params.ResourceID,
		UserID:     params.UserID,
		Title:      params.Title,
		Metadata:   metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}

	s.log.Debug().Str("conversation_id", conv.ID).Msg("conversation created")
	return conv, nil
}

// Get returns the conversation or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id string) (*Conversation, error) {
	conv, err := s.repo.FindByVisibleID(ctx, id)
	if platformerrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get conversation")
	}
	return conv, nil
}

// ListByResource returns every conversation of a resource in creation order.
func (s *Service) ListByResource(ctx context.Context, resourceID string) ([]*Conversation, error) {
	convs, err := s.repo.ListByResourceID(ctx, resourceID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}
	return convs, nil
}

// ListByUser returns one page of a user's conversations.
func (s *Service) ListByUser(ctx context.Context, userID string, opts ListOptions) ([]*Conversation, error) {
	return s.Query(ctx, Filter{UserID: userID}, opts)
}

// Query lists conversations by user and/or resource. Without either filter only the
// most recent UnfilteredScanLimit conversations are considered.
func (s *Service) Query(ctx context.Context, filter Filter, opts ListOptions) ([]*Conversation, error) {
	if filter.UserID == "" && filter.ResourceID == "" {
		filter.ScanLimit = s.limits.UnfilteredScanLimit
		s.log.Debug().Int("scan_limit", filter.ScanLimit).Msg("unfiltered conversation query is bounded")
	} else {
		filter.ScanLimit = 0
	}

	convs, err := s.repo.List(ctx, filter, opts.Normalize())
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to query conversations")
	}
	return convs, nil
}

// Update applies a sparse patch and refreshes updatedAt.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*Conversation, error) {
	if err := validation.Struct(ctx, params, "5b9eaf70-8d2c-4ebf-9ad1-9cadbecfd0e8"); err != nil {
		return nil, err
	}

	var updated *Conversation
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		conv, err := s.repo.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if params.Title != nil {
			conv.Title = *params.Title
		}
		if params.ResourceID != nil {
			conv.ResourceID = *params.ResourceID
		}
		if params.Metadata != nil {
			conv.Metadata = params.Metadata
		}
		conv.UpdatedAt = clock.Now()
		if err := s.repo.Update(ctx, conv); err != nil {
			return err
		}
		updated = conv
		return nil
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update conversation")
	}
	return updated, nil
}

// Remove deletes the conversation after its messages and steps, in one transaction.
func (s *Service) Remove(ctx context.Context, id string) error {
	var removedMessages, removedSteps int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.FindForUpdate(ctx, id); err != nil {
			return err
		}
		var err error
		if removedMessages, err = s.messages.DeleteByConversation(ctx, id); err != nil {
			return err
		}
		if removedSteps, err = s.steps.DeleteByConversation(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to remove conversation")
	}

	s.log.Info().
		Str("conversation_id", id).
		Int64("messages", removedMessages).
		Int64("steps", removedSteps).
		Msg("conversation removed")
	return nil
}
