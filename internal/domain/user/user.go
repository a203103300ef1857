// Package user holds the lazily created user records that carry user-scoped working memory.
package user

import (
	"context"
	"time"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// User is created the first time user-scoped working memory is written.
type User struct {
	ID        string        `json:"id"`
	Metadata  jsonvalue.Map `json:"metadata,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByVisibleID(ctx context.Context, id string) (*User, error)
	FindForUpdate(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
}
