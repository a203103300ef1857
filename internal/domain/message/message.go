package message

import (
	"time"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// DefaultLimit is the window size applied by Get when the caller gives none.
const DefaultLimit = 100

// CreatedAtKey is merged into the metadata of returned messages.
const CreatedAtKey = "createdAt"

// Message is one turn of a conversation. The conversation is a soft reference.
type Message struct {
	ID             string        `json:"id"`
	ConversationID string        `json:"conversationId"`
	UserID         string        `json:"userId"`
	Role           string        `json:"role"`
	Parts          []Part        `json:"parts"`
	Metadata       jsonvalue.Map `json:"metadata,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// AddParams describes a message to insert or replace.
type AddParams struct {
	ID             string        `json:"id" validate:"required,max=255"`
	ConversationID string        `json:"conversationId" validate:"required,max=255"`
	UserID         string        `json:"userId" validate:"required,max=255"`
	Role           string        `json:"role" validate:"required,max=64"`
	Parts          []Part        `json:"parts" validate:"dive"`
	Metadata       jsonvalue.Map `json:"metadata,omitempty"`
}

// AddResult acknowledges an upsert.
type AddResult struct {
	ID      string `json:"id"`
	Created bool   `json:"created,omitempty"`
	Updated bool   `json:"updated,omitempty"`
}

// GetParams selects a window of messages.
type GetParams struct {
	UserID         string     `json:"userId" validate:"required"`
	ConversationID string     `json:"conversationId" validate:"required"`
	Limit          int        `json:"limit,omitempty" validate:"gte=0"`
	Before         *time.Time `json:"before,omitempty"`
	After          *time.Time `json:"after,omitempty"`
	Roles          []string   `json:"roles,omitempty"`
}

// Filter is the repository form of GetParams.
type Filter struct {
	ConversationID string
	UserID         string
	Roles          []string
	// Before and After are strict bounds on createdAt.
	Before *time.Time
	After  *time.Time
	// Limit keeps only the most recent rows; zero means no limit.
	Limit int
}

// ClearResult reports how many rows Clear removed.
type ClearResult struct {
	Success  bool  `json:"success"`
	Messages int64 `json:"messages"`
	Steps    int64 `json:"steps"`
}
