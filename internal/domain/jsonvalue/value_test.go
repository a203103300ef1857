package jsonvalue_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

func TestUnmarshalKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  jsonvalue.Kind
	}{
		{`null`, jsonvalue.KindNull},
		{`true`, jsonvalue.KindBool},
		{`12345678901234567890`, jsonvalue.KindNumber},
		{`"hi"`, jsonvalue.KindString},
		{`[1, "a", null]`, jsonvalue.KindArray},
		{`{"a": {"b": [true]}}`, jsonvalue.KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var v jsonvalue.Value
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.kind, v.Kind())

			out, err := json.Marshal(v)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestLargeNumbersKeepPrecision(t *testing.T) {
	var v jsonvalue.Value
	require.NoError(t, json.Unmarshal([]byte(`9007199254740993`), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", string(out))
}

func TestZeroValueIsNull(t *testing.T) {
	var v jsonvalue.Value
	assert.True(t, v.IsNull())

	out, err := json.Marshal(struct {
		Result jsonvalue.Value `json:"result"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"result": null}`, string(out))
}

func TestRejectsTrailingData(t *testing.T) {
	var v jsonvalue.Value
	assert.Error(t, v.UnmarshalJSON([]byte(`1 2`)))
}

func TestFromInterface(t *testing.T) {
	v, err := jsonvalue.FromInterface(map[string]any{
		"count": 3,
		"tags":  []string{"a", "b"},
	})
	require.NoError(t, err)
	require.Equal(t, jsonvalue.KindObject, v.Kind())

	count, ok := v.Fields()["count"].Float64()
	require.True(t, ok)
	assert.Equal(t, float64(3), count)
	assert.Len(t, v.Fields()["tags"].Items(), 2)
}

func TestEqual(t *testing.T) {
	a := jsonvalue.Object(jsonvalue.Map{"n": jsonvalue.Int(1), "s": jsonvalue.String("x")})
	b := jsonvalue.Object(jsonvalue.Map{"n": jsonvalue.Number("1.0"), "s": jsonvalue.String("x")})
	c := jsonvalue.Object(jsonvalue.Map{"n": jsonvalue.Int(2), "s": jsonvalue.String("x")})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, jsonvalue.Null().Equal(jsonvalue.Bool(false)))
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := jsonvalue.Map{"a": jsonvalue.Int(1)}
	clone := m.Clone()
	clone["b"] = jsonvalue.Int(2)

	assert.Len(t, m, 1)
	assert.Equal(t, []string{"a", "b"}, clone.Keys())
}

func TestStringRendersJSON(t *testing.T) {
	tests := []struct {
		value jsonvalue.Value
		want  string
	}{
		{jsonvalue.Null(), `null`},
		{jsonvalue.Bool(true), `true`},
		{jsonvalue.Int(3), `3`},
		{jsonvalue.String("hi"), `"hi"`},
		{jsonvalue.Array(jsonvalue.Int(1), jsonvalue.String("a")), `[1,"a"]`},
		{jsonvalue.Object(jsonvalue.Map{"b": jsonvalue.Bool(false), "a": jsonvalue.Null()}), `{"a":null,"b":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.value.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprint(tt.value))
		})
	}

	assert.Equal(t, "hi", jsonvalue.String("hi").Str())
	assert.Empty(t, jsonvalue.Int(3).Str())
}
