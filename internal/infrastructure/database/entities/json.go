package entities

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/janhq/agent-memory-store/internal/domain/jsonvalue"
)

// marshalJSON encodes value for a JSON column. Nil maps, nil pointers and JSON null become SQL NULL.
func marshalJSON(value any) (datatypes.JSON, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case jsonvalue.Map:
		if v == nil {
			return nil, nil
		}
	case jsonvalue.Value:
		if v.IsNull() {
			return nil, nil
		}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	if string(data) == "null" {
		return nil, nil
	}
	return datatypes.JSON(data), nil
}

// unmarshalJSON decodes a JSON column into target; empty columns leave target untouched.
func unmarshalJSON(data datatypes.JSON, target any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
