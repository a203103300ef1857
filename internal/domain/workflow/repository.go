package workflow

import "context"

// Repository persists workflow states.
type Repository interface {
	Create(ctx context.Context, s *State) error
	FindByVisibleID(ctx context.Context, id string) (*State, error)
	FindForUpdate(ctx context.Context, id string) (*State, error)
	// Save overwrites every column of an existing state.
	Save(ctx context.Context, s *State) error
	// List returns matching states by descending createdAt.
	List(ctx context.Context, params QueryRunsParams) ([]*State, error)
}

// Transactor runs fn inside a database transaction carried on the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
