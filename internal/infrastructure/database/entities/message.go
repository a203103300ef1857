package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/message"
)

// Message represents the database schema for conversation messages.
type Message struct {
	ID             uint           `gorm:"primaryKey"`
	VisibleID      string         `gorm:"type:varchar(255);uniqueIndex:idx_messages_visible_id;not null"`
	ConversationID string         `gorm:"type:varchar(255);index:idx_messages_conversation_id;index:idx_messages_conversation_id_created_at,priority:1;index:idx_messages_conversation_id_user_id,priority:1;not null"`
	UserID         string         `gorm:"type:varchar(255);index:idx_messages_user_id;index:idx_messages_conversation_id_user_id,priority:2;not null"`
	Role           string         `gorm:"type:varchar(64);not null"`
	Parts          datatypes.JSON `gorm:"not null"`
	Metadata       datatypes.JSON
	CreatedAt      time.Time `gorm:"autoCreateTime:false;index:idx_messages_conversation_id_created_at,priority:2;not null"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// NewSchemaMessage converts a domain message into its row.
func NewSchemaMessage(m *message.Message) (*Message, error) {
	parts := m.Parts
	if parts == nil {
		parts = []message.Part{}
	}
	partsJSON, err := marshalJSON(parts)
	if err != nil {
		return nil, err
	}
	metadata, err := marshalJSON(m.Metadata)
	if err != nil {
		return nil, err
	}
	return &Message{
		VisibleID:      m.ID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		Role:           m.Role,
		Parts:          partsJSON,
		Metadata:       metadata,
		CreatedAt:      m.CreatedAt,
	}, nil
}

// EtoD converts the row into the domain message.
func (e *Message) EtoD() (*message.Message, error) {
	parts := []message.Part{}
	if err := unmarshalJSON(e.Parts, &parts); err != nil {
		return nil, err
	}
	var metadata jsonvalue.Map
	if err := unmarshalJSON(e.Metadata, &metadata); err != nil {
		return nil, err
	}
	return &message.Message{
		ID:             e.VisibleID,
		ConversationID: e.ConversationID,
		UserID:         e.UserID,
		Role:           e.Role,
		Parts:          parts,
		Metadata:       metadata,
		CreatedAt:      e.CreatedAt.UTC(),
	}, nil
}
