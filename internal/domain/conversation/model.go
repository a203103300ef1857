package conversation

import (
	"time"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/query"
)

// DefaultLimit is the page size used when a caller does not supply one.
const DefaultLimit = 50

// DefaultScanLimit bounds the unfiltered query path.
const DefaultScanLimit = 1000

// Conversation groups messages and steps exchanged with an agent.
type Conversation struct {
	ID         string        `json:"id"`
	ResourceID string        `json:"resourceId"`
	UserID     string        `json:"userId"`
	Title      string        `json:"title"`
	Metadata   jsonvalue.Map `json:"metadata"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// WorkingMemory returns the working memory string stored in the metadata, if any.
func (c *Conversation) WorkingMemory() (string, bool) {
	return WorkingMemoryOf(c.Metadata)
}

// WorkingMemoryKey is the metadata field holding scoped working memory.
const WorkingMemoryKey = "workingMemory"

// WorkingMemoryOf extracts the working memory string from a metadata map.
func WorkingMemoryOf(metadata jsonvalue.Map) (string, bool) {
	v, ok := metadata[WorkingMemoryKey]
	if !ok || v.Kind() != jsonvalue.KindString {
		return "", false
	}
	return v.Str(), true
}

// CreateParams describes a new conversation.
type CreateParams struct {
	ID         string        `json:"id" validate:"required,max=255"`
	ResourceID string        `json:"resourceId" validate:"max=255"`
	UserID     string        `json:"userId" validate:"max=255"`
	Title      string        `json:"title"`
	Metadata   jsonvalue.Map `json:"metadata"`
}

// UpdateParams is a sparse patch. Nil fields are left untouched.
type UpdateParams struct {
	Title      *string       `json:"title,omitempty"`
	ResourceID *string       `json:"resourceId,omitempty" validate:"omitempty,max=255"`
	Metadata   jsonvalue.Map `json:"metadata,omitempty"`
}

// OrderField is a sortable conversation column.
type OrderField string

const (
	OrderByCreatedAt OrderField = "created_at"
	OrderByUpdatedAt OrderField = "updated_at"
	OrderByTitle     OrderField = "title"
)

var orderFieldAliases = map[string]OrderField{
	"createdAt":  OrderByCreatedAt,
	"created_at": OrderByCreatedAt,
	"updatedAt":  OrderByUpdatedAt,
	"updated_at": OrderByUpdatedAt,
	"title":      OrderByTitle,
}

// ParseOrderField maps API field names to columns; unknown names fall back to created_at.
func ParseOrderField(raw string) OrderField {
	if field, ok := orderFieldAliases[raw]; ok {
		return field
	}
	return OrderByCreatedAt
}

// ListOptions controls ordering and pagination.
type ListOptions struct {
	OrderBy   OrderField
	Direction query.Direction
	Page      query.Page
}

// NewListOptions builds options from raw API values, applying defaults.
func NewListOptions(limit, offset int, orderBy, direction string) ListOptions {
	return ListOptions{
		OrderBy:   ParseOrderField(orderBy),
		Direction: query.ParseDirection(direction),
		Page:      query.Page{Limit: limit, Offset: offset}.Normalize(DefaultLimit),
	}
}

// Normalize fills in defaults for zero-valued options.
func (o ListOptions) Normalize() ListOptions {
	if o.OrderBy == "" {
		o.OrderBy = OrderByCreatedAt
	}
	if o.Direction != query.Asc {
		o.Direction = query.Desc
	}
	o.Page = o.Page.Normalize(DefaultLimit)
	return o
}

// Filter narrows the conversation query. Empty fields are ignored.
type Filter struct {
	UserID     string
	ResourceID string
	// ScanLimit bounds the candidate set when neither UserID nor ResourceID is given.
	ScanLimit int
}

// QueryLimits configures bounded query paths.
type QueryLimits struct {
	UnfilteredScanLimit int
}
