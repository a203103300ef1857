package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janhq/agent-memory-store/internal/domain/query"
)

func TestParseDirection(t *testing.T) {
	assert.Equal(t, query.Asc, query.ParseDirection("ASC"))
	assert.Equal(t, query.Desc, query.ParseDirection("asc"))
	assert.Equal(t, query.Desc, query.ParseDirection(""))
	assert.Equal(t, query.Desc, query.ParseDirection("DESC"))
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, query.Page{Limit: 50, Offset: 0}, query.Page{Limit: 0, Offset: -3}.Normalize(50))
	assert.Equal(t, query.Page{Limit: 5, Offset: 10}, query.Page{Limit: 5, Offset: 10}.Normalize(50))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, query.Reverse([]int{1, 2, 3}))
	assert.Empty(t, query.Reverse([]int{}))
}

func TestTrimSpaceAll(t *testing.T) {
	assert.Equal(t, []string{"user", "assistant"}, query.TrimSpaceAll([]string{" user", "", "assistant "}))
}
