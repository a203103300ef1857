package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/user"
)

// User represents the database schema for lazily created memory users.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	VisibleID string `gorm:"type:varchar(255);uniqueIndex:idx_memory_users_visible_id;not null"`
	Metadata  datatypes.JSON
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "memory_users"
}

// NewSchemaUser converts a domain user into its row.
func NewSchemaUser(u *user.User) (*User, error) {
	metadata, err := marshalJSON(u.Metadata)
	if err != nil {
		return nil, err
	}
	return &User{
		VisibleID: u.ID,
		Metadata:  metadata,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}

// EtoD converts the row into the domain user.
func (e *User) EtoD() (*user.User, error) {
	var metadata jsonvalue.Map
	if err := unmarshalJSON(e.Metadata, &metadata); err != nil {
		return nil, err
	}
	return &user.User{
		ID:        e.VisibleID,
		Metadata:  metadata,
		CreatedAt: e.CreatedAt.UTC(),
		UpdatedAt: e.UpdatedAt.UTC(),
	}, nil
}
