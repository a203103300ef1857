package message

import "context"

// Repository persists messages.
type Repository interface {
	Create(ctx context.Context, m *Message) error
	FindByVisibleID(ctx context.Context, id string) (*Message, error)
	// Update replaces role, parts and metadata of an existing message.
	Update(ctx context.Context, m *Message) error
	// ListLatest returns messages matching the filter, newest first.
	ListLatest(ctx context.Context, filter Filter) ([]*Message, error)
	DeleteByConversation(ctx context.Context, conversationID string) (int64, error)
	DeleteByConversationAndUser(ctx context.Context, conversationID, userID string) (int64, error)
	// DeleteByConversationOwner removes messages in every conversation owned by userID.
	DeleteByConversationOwner(ctx context.Context, userID string) (int64, error)
}

// StepCleaner removes steps alongside messages when a user clears history.
type StepCleaner interface {
	DeleteByConversationAndUser(ctx context.Context, conversationID, userID string) (int64, error)
	DeleteByConversationOwner(ctx context.Context, userID string) (int64, error)
}

// Transactor runs fn inside a database transaction carried on the context.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
