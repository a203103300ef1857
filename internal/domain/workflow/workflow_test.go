package workflow

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

func TestContextPreservesInsertionOrder(t *testing.T) {
	ctx := NewContext().
		Set("zeta", jsonvalue.Int(1)).
		Set("alpha", jsonvalue.String("a")).
		Set("mid", jsonvalue.Object(jsonvalue.Map{"k": jsonvalue.Bool(true)}))

	data, err := json.Marshal(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[["zeta",1],["alpha","a"],["mid",{"k":true}]]`, string(data))

	var decoded Context
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, decoded.Keys())
	assert.True(t, ctx.Equal(&decoded))

	v, ok := decoded.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "a", v.Str())
}

func TestContextResetKeepsPosition(t *testing.T) {
	ctx := NewContext().Set("a", jsonvalue.Int(1)).Set("b", jsonvalue.Int(2)).Set("a", jsonvalue.Int(3))
	assert.Equal(t, []string{"a", "b"}, ctx.Keys())
	v, _ := ctx.Get("a")
	f, _ := v.Float64()
	assert.Equal(t, 3.0, f)
}

func TestContextUnmarshalRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not a list":     `{"a":1}`,
		"short pair":     `[["a"]]`,
		"non-string key": `[[1,2]]`,
		"duplicate key":  `[["a",1],["a",2]]`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			var c Context
			assert.Error(t, json.Unmarshal([]byte(raw), &c))
		})
	}
}

func TestEmptyContextMarshalsAsEmptyList(t *testing.T) {
	data, err := json.Marshal(NewContext())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, 0, (*Context)(nil).Len())
}

func TestStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("paused").Valid())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusSuspended.IsTerminal())
}

func TestPatchApply(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	state := &State{
		ID:         "exec-1",
		WorkflowID: "wf",
		Status:     StatusRunning,
		Output:     jsonvalue.String("partial"),
		Metadata:   jsonvalue.Map{"k": jsonvalue.Int(1)},
		CreatedAt:  created,
	}

	suspended := StatusSuspended
	Patch{
		Status:     &suspended,
		Suspension: &Suspension{SuspendedAt: created, Reason: "await approval"},
	}.Apply(state)

	assert.Equal(t, StatusSuspended, state.Status)
	assert.Equal(t, "await approval", state.Suspension.Reason)
	assert.Equal(t, "partial", state.Output.Str())
	assert.Equal(t, jsonvalue.Map{"k": jsonvalue.Int(1)}, state.Metadata)
	assert.Equal(t, created, state.CreatedAt)

	null := jsonvalue.Null()
	Patch{Output: &null, Events: []Event{}}.Apply(state)
	assert.True(t, state.Output.IsNull())
	assert.NotNil(t, state.Events)
	assert.Empty(t, state.Events)
}
