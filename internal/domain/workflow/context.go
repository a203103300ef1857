package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// Context is the insertion-ordered execution context of a workflow.
// It serialises as a list of [key, value] pairs.
type Context struct {
	pairs *orderedmap.OrderedMap[string, jsonvalue.Value]
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{pairs: orderedmap.New[string, jsonvalue.Value]()}
}

func (c *Context) ensure() {
	if c.pairs == nil {
		c.pairs = orderedmap.New[string, jsonvalue.Value]()
	}
}

// Set stores value under key. Re-setting a key keeps its original position.
func (c *Context) Set(key string, value jsonvalue.Value) *Context {
	c.ensure()
	c.pairs.Set(key, value)
	return c
}

// Get returns the value stored under key.
func (c *Context) Get(key string) (jsonvalue.Value, bool) {
	if c == nil || c.pairs == nil {
		return jsonvalue.Null(), false
	}
	return c.pairs.Get(key)
}

// Len reports the number of entries.
func (c *Context) Len() int {
	if c == nil || c.pairs == nil {
		return 0
	}
	return c.pairs.Len()
}

// Keys returns the keys in insertion order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, c.Len())
	if c.Len() == 0 {
		return keys
	}
	for pair := c.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Equal reports whether both contexts hold the same pairs in the same order.
func (c *Context) Equal(other *Context) bool {
	if c.Len() != other.Len() {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	a, b := c.pairs.Oldest(), other.pairs.Oldest()
	for a != nil && b != nil {
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

// MarshalJSON encodes the context as [[key, value], ...].
func (c *Context) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	if c.Len() > 0 {
		first := true
		for pair := c.pairs.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			entry, err := json.Marshal([2]any{pair.Key, pair.Value})
			if err != nil {
				return nil, err
			}
			buf.Write(entry)
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes [[key, value], ...]. Keys must be strings and may appear once;
// a repeated key is an error rather than a silent overwrite.
func (c *Context) UnmarshalJSON(data []byte) error {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("workflow context must be a list of [key, value] pairs: %w", err)
	}

	c.pairs = orderedmap.New[string, jsonvalue.Value](len(entries))
	for i, raw := range entries {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			return fmt.Errorf("workflow context entry %d must be a [key, value] pair", i)
		}
		var key string
		if err := json.Unmarshal(pair[0], &key); err != nil {
			return fmt.Errorf("workflow context entry %d: key must be a string", i)
		}
		if _, dup := c.pairs.Get(key); dup {
			return fmt.Errorf("workflow context entry %d: duplicate key %q", i, key)
		}
		var value jsonvalue.Value
		if err := json.Unmarshal(pair[1], &value); err != nil {
			return fmt.Errorf("workflow context entry %d: %w", i, err)
		}
		c.pairs.Set(key, value)
	}
	return nil
}
