package workflow

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/clock"
	"github.com/janhq/agent-memory-store/internal/domain/validation"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// Service records workflow execution state.
type Service struct {
	repo Repository
	tx   Transactor
	log  zerolog.Logger
}

// NewService creates a workflow state service.
func NewService(repo Repository, tx Transactor, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With().Str("component", "workflow-service").Logger(),
	}
}

// Get returns the state of an execution, or nil when unknown.
func (s *Service) Get(ctx context.Context, executionID string) (*State, error) {
	state, err := s.repo.FindByVisibleID(ctx, executionID)
	if platformerrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get workflow state")
	}
	return state, nil
}

// QueryRuns lists runs newest first, filtered by workflow, status and creation window.
func (s *Service) QueryRuns(ctx context.Context, params QueryRunsParams) ([]*State, error) {
	if err := validation.Struct(ctx, params, "6cafb081-9e3d-4fc0-8be2-adbecfd0e1f9"); err != nil {
		return nil, err
	}
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		return []*State{}, nil
	}
	if params.Limit != nil && *params.Limit == 0 {
		return []*State{}, nil
	}

	states, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to query workflow runs")
	}
	return states, nil
}

// GetSuspended returns the suspended runs of a workflow, newest first.
func (s *Service) GetSuspended(ctx context.Context, workflowID string) ([]*State, error) {
	if workflowID == "" {
		return nil, validation.Failed(ctx, "workflowId is required", "7db0c192-af4e-40d1-9cf3-becfd0e1f20a")
	}
	states, err := s.repo.List(ctx, QueryRunsParams{WorkflowID: workflowID, Status: StatusSuspended})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to get suspended workflows")
	}
	return states, nil
}

// Set creates the state or replaces every field of an existing one except createdAt.
func (s *Service) Set(ctx context.Context, executionID string, state State) (Result, error) {
	state.ID = executionID
	if err := validation.Struct(ctx, state, "8ec1d2a3-b05f-41e2-8d04-cfd0e1f2031b"); err != nil {
		return Result{}, err
	}

	now := clock.Now()
	if state.CreatedAt.IsZero() {
		state.CreatedAt = now
	}
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = now
	}
	state.CreatedAt = clock.Normalize(state.CreatedAt)
	state.UpdatedAt = clock.Normalize(state.UpdatedAt)

	write := func(ctx context.Context) error {
		existing, err := s.repo.FindForUpdate(ctx, executionID)
		if platformerrors.IsNotFound(err) {
			created := state
			return s.repo.Create(ctx, &created)
		}
		if err != nil {
			return err
		}
		replaced := state
		replaced.CreatedAt = existing.CreatedAt
		return s.repo.Save(ctx, &replaced)
	}

	err := s.tx.WithinTransaction(ctx, write)
	if platformerrors.IsAlreadyExists(err) {
		err = s.tx.WithinTransaction(ctx, write)
	}
	if err != nil {
		return Result{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to set workflow state")
	}

	s.log.Debug().
		Str("execution_id", executionID).
		Str("workflow_id", state.WorkflowID).
		Str("status", string(state.Status)).
		Msg("workflow state set")
	return Result{Success: true}, nil
}

// Update patches the supplied fields and stamps updatedAt with the current time.
func (s *Service) Update(ctx context.Context, executionID string, patch Patch) (Result, error) {
	if err := validation.Struct(ctx, patch, "9fd2e3b4-c160-42f3-9e15-d0e1f203142c"); err != nil {
		return Result{}, err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		state, err := s.repo.FindForUpdate(ctx, executionID)
		if err != nil {
			return err
		}
		patch.Apply(state)
		state.UpdatedAt = clock.Now()
		return s.repo.Save(ctx, state)
	})
	if err != nil {
		return Result{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update workflow state")
	}

	if patch.Status != nil {
		s.log.Debug().Str("execution_id", executionID).Str("status", string(*patch.Status)).Msg("workflow status recorded")
	}
	return Result{Success: true}, nil
}
