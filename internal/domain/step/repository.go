package step

import "context"

// Repository persists conversation steps.
type Repository interface {
	Create(ctx context.Context, s *Step) error
	FindByVisibleID(ctx context.Context, id string) (*Step, error)
	Update(ctx context.Context, s *Step) error
	// ListLatest returns matching steps ordered by descending step index.
	ListLatest(ctx context.Context, filter Filter) ([]*Step, error)
	DeleteByConversation(ctx context.Context, conversationID string) (int64, error)
	DeleteByConversationAndUser(ctx context.Context, conversationID, userID string) (int64, error)
	DeleteByConversationOwner(ctx context.Context, userID string) (int64, error)
}

// Transactor runs fn inside a database transaction carried on the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
