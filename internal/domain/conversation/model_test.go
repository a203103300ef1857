package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
	"github.com/janhq/agent-memory-store/internal/domain/query"
)

func TestParseOrderField(t *testing.T) {
	tests := []struct {
		raw  string
		want OrderField
	}{
		{"createdAt", OrderByCreatedAt},
		{"created_at", OrderByCreatedAt},
		{"updatedAt", OrderByUpdatedAt},
		{"updated_at", OrderByUpdatedAt},
		{"title", OrderByTitle},
		{"", OrderByCreatedAt},
		{"resourceId", OrderByCreatedAt},
		{"Title", OrderByCreatedAt},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrderField(tt.raw))
		})
	}
}

func TestNewListOptions(t *testing.T) {
	opts := NewListOptions(0, -1, "bogus", "asc")
	assert.Equal(t, OrderByCreatedAt, opts.OrderBy)
	assert.Equal(t, query.Desc, opts.Direction)
	assert.Equal(t, query.Page{Limit: DefaultLimit, Offset: 0}, opts.Page)

	opts = NewListOptions(10, 20, "updatedAt", "ASC")
	assert.Equal(t, OrderByUpdatedAt, opts.OrderBy)
	assert.Equal(t, query.Asc, opts.Direction)
	assert.Equal(t, query.Page{Limit: 10, Offset: 20}, opts.Page)
}

func TestListOptionsNormalize(t *testing.T) {
	opts := ListOptions{}.Normalize()
	assert.Equal(t, OrderByCreatedAt, opts.OrderBy)
	assert.Equal(t, query.Desc, opts.Direction)
	assert.Equal(t, DefaultLimit, opts.Page.Limit)
}

func TestWorkingMemoryOf(t *testing.T) {
	_, ok := WorkingMemoryOf(nil)
	assert.False(t, ok)

	_, ok = WorkingMemoryOf(jsonvalue.Map{WorkingMemoryKey: jsonvalue.Int(3)})
	assert.False(t, ok)

	conv := Conversation{Metadata: jsonvalue.Map{WorkingMemoryKey: jsonvalue.String("likes tea")}}
	got, ok := conv.WorkingMemory()
	assert.True(t, ok)
	assert.Equal(t, "likes tea", got)
}
