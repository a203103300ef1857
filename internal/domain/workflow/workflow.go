package workflow

import (
	"time"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// Status is the recorded execution status of a workflow run.
// The store records transitions; it never checks that they are legal.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSuspended Status = "suspended"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusError     Status = "error"
)

// Statuses lists every known status.
var Statuses = []Status{StatusRunning, StatusSuspended, StatusCompleted, StatusCancelled, StatusError}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are expected.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusError
}

// Checkpoint captures in-flight step state so a suspended run can resume.
type Checkpoint struct {
	StepExecutionState jsonvalue.Value   `json:"stepExecutionState"`
	CompletedStepsData []jsonvalue.Value `json:"completedStepsData,omitempty"`
}

// Suspension describes why and where a run was suspended.
type Suspension struct {
	SuspendedAt        time.Time       `json:"suspendedAt" validate:"required"`
	Reason             string          `json:"reason,omitempty"`
	SuspendedStepIndex *int            `json:"suspendedStepIndex,omitempty" validate:"omitempty,gte=0"`
	LastEventSequence  *int            `json:"lastEventSequence,omitempty" validate:"omitempty,gte=0"`
	SuspendData        jsonvalue.Value `json:"suspendData"`
	Checkpoint         *Checkpoint     `json:"checkpoint,omitempty"`
}

// Cancellation records a cancelled run.
type Cancellation struct {
	CancelledAt time.Time `json:"cancelledAt" validate:"required"`
	Reason      string    `json:"reason,omitempty"`
}

// Event is one entry of a run's event log.
type Event struct {
	ID        string          `json:"id" validate:"required"`
	Type      string          `json:"type" validate:"required"`
	Name      string          `json:"name,omitempty"`
	From      string          `json:"from,omitempty"`
	StartTime time.Time       `json:"startTime" validate:"required"`
	EndTime   *time.Time      `json:"endTime,omitempty"`
	Status    string          `json:"status,omitempty"`
	Input     jsonvalue.Value `json:"input"`
	Output    jsonvalue.Value `json:"output"`
	Metadata  jsonvalue.Map   `json:"metadata,omitempty"`
	Context   jsonvalue.Map   `json:"context,omitempty"`
}

// State is the persisted execution record of one workflow run, keyed by execution id.
type State struct {
	ID             string          `json:"id" validate:"required,max=255"`
	WorkflowID     string          `json:"workflowId" validate:"required,max=255"`
	WorkflowName   string          `json:"workflowName" validate:"required,max=255"`
	Status         Status          `json:"status" validate:"required,oneof=running suspended completed cancelled error"`
	Input          jsonvalue.Value `json:"input"`
	Context        *Context        `json:"context,omitempty"`
	Suspension     *Suspension     `json:"suspension,omitempty"`
	Events         []Event         `json:"events,omitempty" validate:"dive"`
	Output         jsonvalue.Value `json:"output"`
	Cancellation   *Cancellation   `json:"cancellation,omitempty"`
	UserID         string          `json:"userId,omitempty" validate:"max=255"`
	ConversationID string          `json:"conversationId,omitempty" validate:"max=255"`
	Metadata       jsonvalue.Map   `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Patch is a sparse update. Nil fields are left untouched.
type Patch struct {
	Status       *Status          `json:"status,omitempty" validate:"omitempty,oneof=running suspended completed cancelled error"`
	Suspension   *Suspension      `json:"suspension,omitempty"`
	Events       []Event          `json:"events,omitempty" validate:"omitempty,dive"`
	Output       *jsonvalue.Value `json:"output,omitempty"`
	Cancellation *Cancellation    `json:"cancellation,omitempty"`
	Metadata     jsonvalue.Map    `json:"metadata,omitempty"`
}

// Apply copies the supplied fields of p onto s.
func (p Patch) Apply(s *State) {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Suspension != nil {
		s.Suspension = p.Suspension
	}
	if p.Events != nil {
		s.Events = p.Events
	}
	if p.Output != nil {
		s.Output = *p.Output
	}
	if p.Cancellation != nil {
		s.Cancellation = p.Cancellation
	}
	if p.Metadata != nil {
		s.Metadata = p.Metadata
	}
}

// QueryRunsParams filters the administrative run listing.
type QueryRunsParams struct {
	WorkflowID string     `json:"workflowId,omitempty"`
	Status     Status     `json:"status,omitempty" validate:"omitempty,oneof=running suspended completed cancelled error"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	// Limit caps the page. Nil returns every matching run; zero returns none.
	Limit  *int `json:"limit,omitempty" validate:"omitempty,gte=0"`
	Offset int  `json:"offset,omitempty" validate:"gte=0"`
}

// Result acknowledges a write.
type Result struct {
	Success bool `json:"success"`
}
