package message

import (
	"encoding/json"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// PartType tags the variant held by a Part.
type PartType string

const (
	PartText              PartType = "text"
	PartImage             PartType = "image"
	PartFile              PartType = "file"
	PartToolCall          PartType = "tool-call"
	PartToolResult        PartType = "tool-result"
	PartReasoning         PartType = "reasoning"
	PartRedactedReasoning PartType = "redacted-reasoning"
	PartSource            PartType = "source"
)

// ProviderData is a per-provider map of option or metadata fields.
type ProviderData map[string]jsonvalue.Map

// Part is one element of a message body. Which fields are meaningful depends on Type.
type Part struct {
	Type PartType `json:"type" validate:"required,oneof=text image file tool-call tool-result reasoning redacted-reasoning source"`

	// text, reasoning
	Text      string `json:"text,omitempty"`
	Signature string `json:"signature,omitempty"`

	// image
	Image string `json:"image,omitempty" validate:"required_if=Type image"`

	// file, redacted-reasoning
	Data     string `json:"data,omitempty" validate:"required_if=Type file,required_if=Type redacted-reasoning"`
	Filename string `json:"filename,omitempty"`
	MimeType string `json:"mimeType,omitempty" validate:"required_if=Type file"`

	// tool-call, tool-result
	ToolCallID       string          `json:"toolCallId,omitempty" validate:"required_if=Type tool-call,required_if=Type tool-result"`
	ToolName         string          `json:"toolName,omitempty" validate:"required_if=Type tool-call,required_if=Type tool-result"`
	Args             jsonvalue.Map   `json:"args,omitempty" validate:"required_if=Type tool-call"`
	State            string          `json:"state,omitempty" validate:"omitempty,oneof=partial-call call"`
	Result           jsonvalue.Value `json:"result,omitempty"`
	IsError          *bool           `json:"isError,omitempty"`
	ProviderExecuted *bool           `json:"providerExecuted,omitempty"`

	// source
	SourceType string `json:"sourceType,omitempty" validate:"required_if=Type source,omitempty,oneof=url document"`
	SourceID   string `json:"id,omitempty" validate:"required_if=Type source"`
	URL        string `json:"url,omitempty"`
	Title      string `json:"title,omitempty"`
	MediaType  string `json:"mediaType,omitempty"`

	ProviderOptions  ProviderData `json:"providerOptions,omitempty"`
	ProviderMetadata ProviderData `json:"providerMetadata,omitempty"`
}

// MarshalJSON always emits the fields a variant requires, even when they are empty.
func (p Part) MarshalJSON() ([]byte, error) {
	type plain Part
	out := struct {
		plain
		Text   *string          `json:"text,omitempty"`
		Args   *jsonvalue.Map   `json:"args,omitempty"`
		Result *jsonvalue.Value `json:"result,omitempty"`
	}{plain: plain(p)}

	if p.Text != "" || p.Type == PartText || p.Type == PartReasoning {
		text := p.Text
		out.Text = &text
	}
	if p.Type == PartToolCall || len(p.Args) > 0 {
		args := p.Args
		if args == nil {
			args = jsonvalue.Map{}
		}
		out.Args = &args
	}
	if !p.Result.IsNull() {
		result := p.Result
		out.Result = &result
	}
	return json.Marshal(out)
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Type: PartText, Text: text}
}

// ToolCallPart builds a tool-call part.
func ToolCallPart(toolCallID, toolName string, args jsonvalue.Map) Part {
	if args == nil {
		args = jsonvalue.Map{}
	}
	return Part{Type: PartToolCall, ToolCallID: toolCallID, ToolName: toolName, Args: args}
}

// ToolResultPart builds a tool-result part.
func ToolResultPart(toolCallID, toolName string, result jsonvalue.Value) Part {
	return Part{Type: PartToolResult, ToolCallID: toolCallID, ToolName: toolName, Result: result}
}
