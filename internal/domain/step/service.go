package step

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/clock"
	"github.com/janhq/agent-memory-store/internal/domain/query"
	"github.com/janhq/agent-memory-store/internal/domain/validation"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// Service implements step upserts and ordered reads.
type Service struct {
	repo Repository
	tx   Transactor
	log  zerolog.Logger
}

// NewService creates a step service.
func NewService(repo Repository, tx Transactor, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With().Str("component", "step-service").Logger(),
	}
}

// Save upserts each step in order. The batch is not atomic as a whole.
func (s *Service) Save(ctx context.Context, steps []Step) (SaveResult, error) {
	for i := range steps {
		if err := validation.Struct(ctx, steps[i], "1d5a6b3c-4f8e-4a7b-9c9d-5e6f7a8b9ca4"); err != nil {
			return SaveResult{}, err
		}
	}

	now := clock.Now()
	for _, st := range steps {
		if err := s.upsert(ctx, st, now); err != nil {
			return SaveResult{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save steps")
		}
	}

	s.log.Debug().Int("count", len(steps)).Msg("steps saved")
	return SaveResult{Success: true, Count: len(steps)}, nil
}

func (s *Service) upsert(ctx context.Context, incoming Step, now time.Time) error {
	write := func(ctx context.Context) error {
		existing, err := s.repo.FindByVisibleID(ctx, incoming.ID)
		if err == nil {
			existing.Apply(incoming)
			return s.repo.Update(ctx, existing)
		}
		if !platformerrors.IsNotFound(err) {
			return err
		}

		created := incoming
		if created.CreatedAt.IsZero() {
			created.CreatedAt = now
		} else {
			created.CreatedAt = clock.Normalize(created.CreatedAt)
		}
		return s.repo.Create(ctx, &created)
	}

	err := s.tx.WithinTransaction(ctx, write)
	if platformerrors.IsAlreadyExists(err) {
		return s.tx.WithinTransaction(ctx, write)
	}
	return err
}

// Get returns the steps of a user in a conversation by ascending step index.
func (s *Service) Get(ctx context.Context, params GetParams) ([]*Step, error) {
	if err := validation.Struct(ctx, params, "2e6b7c4d-5a9f-4b8c-8dae-6f7a8b9cadb5"); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit < 0 {
		limit = 0
	}

	latest, err := s.repo.ListLatest(ctx, Filter{
		ConversationID: params.ConversationID,
		UserID:         params.UserID,
		OperationID:    params.OperationID,
		Limit:          limit,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get steps")
	}
	return query.Reverse(latest), nil
}
