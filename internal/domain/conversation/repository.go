package conversation

import "context"

// Repository exposes persistence operations for conversations.
// Lookups return a NOT_FOUND PlatformError when the conversation is absent.
type Repository interface {
	Create(ctx context.Context, conversation *Conversation) error
	FindByVisibleID(ctx context.Context, id string) (*Conversation, error)
	// FindForUpdate reads the row with a write lock when the store supports it and never serves from cache.
	FindForUpdate(ctx context.Context, id string) (*Conversation, error)
	ListByResourceID(ctx context.Context, resourceID string) ([]*Conversation, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]*Conversation, error)
	Update(ctx context.Context, conversation *Conversation) error
	Delete(ctx context.Context, id string) error
}

// Transactor runs fn inside a database transaction carried on the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
