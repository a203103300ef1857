package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
)

// WorkflowState represents the database schema for workflow execution records.
type WorkflowState struct {
	ID             uint   `gorm:"primaryKey"`
	VisibleID      string `gorm:"type:varchar(255);uniqueIndex:idx_workflow_states_visible_id;not null"`
	WorkflowID     string `gorm:"type:varchar(255);index:idx_workflow_states_workflow_id;index:idx_workflow_states_workflow_id_status,priority:1;not null"`
	WorkflowName   string `gorm:"type:varchar(255);not null"`
	Status         string `gorm:"type:varchar(32);index:idx_workflow_states_status;index:idx_workflow_states_workflow_id_status,priority:2;not null"`
	Input          datatypes.JSON
	Context        datatypes.JSON
	Suspension     datatypes.JSON
	Events         datatypes.JSON
	Output         datatypes.JSON
	Cancellation   datatypes.JSON
	UserID         *string `gorm:"type:varchar(255)"`
	ConversationID *string `gorm:"type:varchar(255)"`
	Metadata       datatypes.JSON
	CreatedAt      time.Time `gorm:"autoCreateTime:false;index:idx_workflow_states_created_at;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`
}

// TableName specifies the table name for WorkflowState.
func (WorkflowState) TableName() string {
	return "workflow_states"
}

// NewSchemaWorkflowState converts a domain state into its row.
func NewSchemaWorkflowState(s *workflow.State) (*WorkflowState, error) {
	row := &WorkflowState{
		VisibleID:      s.ID,
		WorkflowID:     s.WorkflowID,
		WorkflowName:   s.WorkflowName,
		Status:         string(s.Status),
		UserID:         optionalString(s.UserID),
		ConversationID: optionalString(s.ConversationID),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}

	columns := []struct {
		dst *datatypes.JSON
		src any
	}{
		{&row.Input, s.Input},
		{&row.Context, s.Context},
		{&row.Suspension, s.Suspension},
		{&row.Events, s.Events},
		{&row.Output, s.Output},
		{&row.Cancellation, s.Cancellation},
		{&row.Metadata, s.Metadata},
	}
	for _, col := range columns {
		data, err := marshalJSON(col.src)
		if err != nil {
			return nil, err
		}
		*col.dst = data
	}
	return row, nil
}

// EtoD converts the row into the domain state.
func (e *WorkflowState) EtoD() (*workflow.State, error) {
	out := &workflow.State{
		ID:             e.VisibleID,
		WorkflowID:     e.WorkflowID,
		WorkflowName:   e.WorkflowName,
		Status:         workflow.Status(e.Status),
		UserID:         derefString(e.UserID),
		ConversationID: derefString(e.ConversationID),
		CreatedAt:      e.CreatedAt.UTC(),
		UpdatedAt:      e.UpdatedAt.UTC(),
	}

	if len(e.Context) > 0 {
		out.Context = workflow.NewContext()
		if err := unmarshalJSON(e.Context, out.Context); err != nil {
			return nil, err
		}
	}
	if len(e.Suspension) > 0 {
		out.Suspension = &workflow.Suspension{}
		if err := unmarshalJSON(e.Suspension, out.Suspension); err != nil {
			return nil, err
		}
	}
	if len(e.Cancellation) > 0 {
		out.Cancellation = &workflow.Cancellation{}
		if err := unmarshalJSON(e.Cancellation, out.Cancellation); err != nil {
			return nil, err
		}
	}
	var metadata jsonvalue.Map
	decoders := []struct {
		src datatypes.JSON
		dst any
	}{
		{e.Input, &out.Input},
		{e.Events, &out.Events},
		{e.Output, &out.Output},
		{e.Metadata, &metadata},
	}
	for _, d := range decoders {
		if err := unmarshalJSON(d.src, d.dst); err != nil {
			return nil, err
		}
	}
	out.Metadata = metadata
	return out, nil
}
