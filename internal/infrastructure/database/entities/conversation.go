package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// Conversation represents the database schema for conversations.
type Conversation struct {
	ID         uint           `gorm:"primaryKey"`
	VisibleID  string         `gorm:"type:varchar(255);uniqueIndex:idx_conversations_visible_id;not null"`
	ResourceID string         `gorm:"type:varchar(255);index:idx_conversations_resource_id;not null;default:''"`
	UserID     string         `gorm:"type:varchar(255);index:idx_conversations_user_id;index:idx_conversations_user_id_updated_at,priority:1;not null;default:''"`
	Title      string         `gorm:"type:text;not null;default:''"`
	Metadata   datatypes.JSON `gorm:"column:metadata"`
	CreatedAt  time.Time      `gorm:"autoCreateTime:false;not null"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime:false;index:idx_conversations_user_id_updated_at,priority:2;not null"`
}

// TableName specifies the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}

// NewSchemaConversation converts a domain conversation into its row. The internal id is left zero.
func NewSchemaConversation(c *conversation.Conversation) (*Conversation, error) {
	metadata, err := marshalJSON(c.Metadata)
	if err != nil {
		return nil, err
	}
	return &Conversation{
		VisibleID:  c.ID,
		ResourceID: c.ResourceID,
		UserID:     c.UserID,
		Title:      c.Title,
		Metadata:   metadata,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}, nil
}

// EtoD converts the row into the domain conversation.
func (e *Conversation) EtoD() (*conversation.Conversation, error) {
	metadata := jsonvalue.Map{}
	if err := unmarshalJSON(e.Metadata, &metadata); err != nil {
		return nil, err
	}
	return &conversation.Conversation{
		ID:         e.VisibleID,
		ResourceID: e.ResourceID,
		UserID:     e.UserID,
		Title:      e.Title,
		Metadata:   metadata,
		CreatedAt:  e.CreatedAt.UTC(),
		UpdatedAt:  e.UpdatedAt.UTC(),
	}, nil
}
