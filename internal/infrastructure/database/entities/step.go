package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/step"
)

// ConversationStep represents the database schema for agent observability steps.
type ConversationStep struct {
	ID             uint    `gorm:"primaryKey"`
	VisibleID      string  `gorm:"type:varchar(255);uniqueIndex:idx_conversation_steps_visible_id;not null"`
	ConversationID string  `gorm:"type:varchar(255);index:idx_conversation_steps_conversation_id;index:idx_conversation_steps_conversation_id_step_index,priority:1;index:idx_conversation_steps_conversation_id_operation_id,priority:1;not null"`
	UserID         string  `gorm:"type:varchar(255);index:idx_conversation_steps_user_id;not null"`
	AgentID        string  `gorm:"type:varchar(255);not null"`
	AgentName      *string `gorm:"type:varchar(255)"`
	OperationID    *string `gorm:"type:varchar(255);index:idx_conversation_steps_conversation_id_operation_id,priority:2"`
	StepIndex      int     `gorm:"index:idx_conversation_steps_conversation_id_step_index,priority:2;not null"`
	Type           string  `gorm:"type:varchar(64);not null"`
	Role           string  `gorm:"type:varchar(64);not null"`
	Content        *string `gorm:"type:text"`
	Arguments      datatypes.JSON
	Result         datatypes.JSON
	Usage          datatypes.JSON
	SubAgentID     *string   `gorm:"type:varchar(255)"`
	SubAgentName   *string   `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
}

// TableName specifies the table name for ConversationStep.
func (ConversationStep) TableName() string {
	return "conversation_steps"
}

// NewSchemaConversationStep converts a domain step into its row.
func NewSchemaConversationStep(s *step.Step) (*ConversationStep, error) {
	arguments, err := marshalJSON(s.Arguments)
	if err != nil {
		return nil, err
	}
	result, err := marshalJSON(s.Result)
	if err != nil {
		return nil, err
	}
	usage, err := marshalJSON(s.Usage)
	if err != nil {
		return nil, err
	}
	return &ConversationStep{
		VisibleID:      s.ID,
		ConversationID: s.ConversationID,
		UserID:         s.UserID,
		AgentID:        s.AgentID,
		AgentName:      optionalString(s.AgentName),
		OperationID:    optionalString(s.OperationID),
		StepIndex:      s.StepIndex,
		Type:           s.Type,
		Role:           s.Role,
		Content:        s.Content,
		Arguments:      arguments,
		Result:         result,
		Usage:          usage,
		SubAgentID:     optionalString(s.SubAgentID),
		SubAgentName:   optionalString(s.SubAgentName),
		CreatedAt:      s.CreatedAt,
	}, nil
}

// EtoD converts the row into the domain step.
func (e *ConversationStep) EtoD() (*step.Step, error) {
	out := &step.Step{
		ID:             e.VisibleID,
		ConversationID: e.ConversationID,
		UserID:         e.UserID,
		AgentID:        e.AgentID,
		AgentName:      derefString(e.AgentName),
		OperationID:    derefString(e.OperationID),
		StepIndex:      e.StepIndex,
		Type:           e.Type,
		Role:           e.Role,
		Content:        e.Content,
		SubAgentID:     derefString(e.SubAgentID),
		SubAgentName:   derefString(e.SubAgentName),
		CreatedAt:      e.CreatedAt.UTC(),
	}
	var arguments jsonvalue.Map
	if err := unmarshalJSON(e.Arguments, &arguments); err != nil {
		return nil, err
	}
	out.Arguments = arguments
	if err := unmarshalJSON(e.Result, &out.Result); err != nil {
		return nil, err
	}
	if len(e.Usage) > 0 {
		out.Usage = &step.Usage{}
		if err := unmarshalJSON(e.Usage, out.Usage); err != nil {
			return nil, err
		}
	}
	return out, nil
}
