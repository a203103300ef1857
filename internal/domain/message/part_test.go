package message

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/validation"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

func addParams(parts ...Part) AddParams {
	return AddParams{ID: "m1", ConversationID: "c1", UserID: "u1", Role: "user", Parts: parts}
}

func TestPartValidation(t *testing.T) {
	tests := []struct {
		name    string
		part    Part
		wantErr string
	}{
		{name: "text", part: TextPart("hi")},
		{name: "empty text", part: TextPart("")},
		{name: "image", part: Part{Type: PartImage, Image: "https://example.com/a.png"}},
		{name: "image without image", part: Part{Type: PartImage}, wantErr: "parts[0].image is required"},
		{name: "file", part: Part{Type: PartFile, Data: "YWJj", MimeType: "text/plain"}},
		{name: "file without mime type", part: Part{Type: PartFile, Data: "YWJj"}, wantErr: "parts[0].mimeType is required"},
		{name: "tool call", part: ToolCallPart("call-1", "search", nil)},
		{name: "tool call without args", part: Part{Type: PartToolCall, ToolCallID: "call-1", ToolName: "search"}, wantErr: "parts[0].args is required"},
		{name: "tool call bad state", part: Part{Type: PartToolCall, ToolCallID: "c", ToolName: "t", Args: jsonvalue.Map{}, State: "done"}, wantErr: "parts[0].state must be one of"},
		{name: "tool result", part: ToolResultPart("call-1", "search", jsonvalue.String("ok"))},
		{name: "tool result without name", part: Part{Type: PartToolResult, ToolCallID: "call-1"}, wantErr: "parts[0].toolName is required"},
		{name: "reasoning", part: Part{Type: PartReasoning, Text: "thinking", Signature: "sig"}},
		{name: "redacted reasoning", part: Part{Type: PartRedactedReasoning, Data: "xyz"}},
		{name: "redacted reasoning without data", part: Part{Type: PartRedactedReasoning}, wantErr: "parts[0].data is required"},
		{name: "source", part: Part{Type: PartSource, SourceType: "url", SourceID: "s1", URL: "https://example.com"}},
		{name: "source bad type", part: Part{Type: PartSource, SourceType: "book", SourceID: "s1"}, wantErr: "parts[0].sourceType must be one of"},
		{name: "source without id", part: Part{Type: PartSource, SourceType: "document"}, wantErr: "parts[0].id is required"},
		{name: "unknown type", part: Part{Type: "video"}, wantErr: "parts[0].type must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(context.Background(), addParams(tt.part), "test")
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAddParamsRequiredFields(t *testing.T) {
	err := validation.Struct(context.Background(), AddParams{}, "test")
	require.Error(t, err)
	for _, field := range []string{"id", "conversationId", "userId", "role"} {
		assert.Contains(t, err.Error(), field+" is required")
	}
}

func TestPartJSONRoundTrip(t *testing.T) {
	parts := []Part{
		TextPart(""),
		ToolCallPart("call-1", "search", nil),
		{
			Type:            PartToolResult,
			ToolCallID:      "call-1",
			ToolName:        "search",
			Result:          jsonvalue.Object(jsonvalue.Map{"hits": jsonvalue.Int(3)}),
			ProviderOptions: ProviderData{"openai": jsonvalue.Map{"cache": jsonvalue.Bool(true)}},
		},
	}

	data, err := json.Marshal(parts)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"text","text":""},
		{"type":"tool-call","toolCallId":"call-1","toolName":"search","args":{}},
		{"type":"tool-result","toolCallId":"call-1","toolName":"search","result":{"hits":3},
		 "providerOptions":{"openai":{"cache":true}}}
	]`, string(data))

	var decoded []Part
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, PartText, decoded[0].Type)
	assert.NotNil(t, decoded[1].Args)
	assert.True(t, decoded[2].Result.Equal(parts[2].Result))
}
