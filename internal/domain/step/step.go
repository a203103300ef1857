package step

import (
	"time"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// Usage carries token accounting reported by the model provider.
type Usage struct {
	PromptTokens      *int `json:"promptTokens,omitempty" validate:"omitempty,gte=0"`
	CompletionTokens  *int `json:"completionTokens,omitempty" validate:"omitempty,gte=0"`
	TotalTokens       *int `json:"totalTokens,omitempty" validate:"omitempty,gte=0"`
	ReasoningTokens   *int `json:"reasoningTokens,omitempty" validate:"omitempty,gte=0"`
	CachedInputTokens *int `json:"cachedInputTokens,omitempty" validate:"omitempty,gte=0"`
}

// Step is one observability record of an agent run inside a conversation.
type Step struct {
	ID             string          `json:"id" validate:"required,max=255"`
	ConversationID string          `json:"conversationId" validate:"required,max=255"`
	UserID         string          `json:"userId" validate:"required,max=255"`
	AgentID        string          `json:"agentId" validate:"required,max=255"`
	AgentName      string          `json:"agentName,omitempty"`
	OperationID    string          `json:"operationId,omitempty" validate:"max=255"`
	StepIndex      int             `json:"stepIndex" validate:"gte=0"`
	Type           string          `json:"type" validate:"required,max=64"`
	Role           string          `json:"role" validate:"required,max=64"`
	Content        *string         `json:"content,omitempty"`
	Arguments      jsonvalue.Map   `json:"arguments,omitempty"`
	Result         jsonvalue.Value `json:"result"`
	Usage          *Usage          `json:"usage,omitempty"`
	SubAgentID     string          `json:"subAgentId,omitempty"`
	SubAgentName   string          `json:"subAgentName,omitempty"`
	// CreatedAt is honoured on first insert; zero means now.
	CreatedAt time.Time `json:"createdAt"`
}

// Apply overwrites the mutable fields of s with those of other.
// Identity, ownership and createdAt are kept.
func (s *Step) Apply(other Step) {
	s.AgentName = other.AgentName
	s.OperationID = other.OperationID
	s.StepIndex = other.StepIndex
	s.Type = other.Type
	s.Role = other.Role
	s.Content = other.Content
	s.Arguments = other.Arguments
	s.Result = other.Result
	s.Usage = other.Usage
	s.SubAgentID = other.SubAgentID
	s.SubAgentName = other.SubAgentName
}

// SaveResult acknowledges a batch save.
type SaveResult struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// GetParams selects steps of a conversation.
type GetParams struct {
	UserID         string `json:"userId" validate:"required"`
	ConversationID string `json:"conversationId" validate:"required"`
	// Limit keeps the last steps by index when positive.
	Limit       int    `json:"limit,omitempty"`
	OperationID string `json:"operationId,omitempty"`
}

// Filter is the repository form of GetParams.
type Filter struct {
	ConversationID string
	UserID         string
	OperationID    string
	// Limit keeps the highest step indexes; zero means all.
	Limit int
}
