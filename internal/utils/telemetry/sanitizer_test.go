package telemetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	tests := []struct {
		name  string
		level PIILevel
		check func(t *testing.T, got string)
	}{
		{"none", PIILevelNone, func(t *testing.T, got string) { assert.Equal(t, "[REDACTED]", got) }},
		{"full", PIILevelFull, func(t *testing.T, got string) { assert.Equal(t, "user-42", got) }},
		{"hashed", PIILevelHashed, func(t *testing.T, got string) {
			assert.Len(t, got, 8)
			assert.NotEqual(t, "user-42", got)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSanitizer(tt.level, "memory-store")
			tt.check(t, s.UserID("user-42"))
		})
	}

	assert.Empty(t, NewSanitizer(PIILevelHashed, "x").UserID(""))
}

func TestUserID_HashIsSalted(t *testing.T) {
	a := NewSanitizer(PIILevelHashed, "one").UserID("user-42")
	b := NewSanitizer(PIILevelHashed, "two").UserID("user-42")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, NewSanitizer(PIILevelHashed, "one").UserID("user-42"))
}

func TestContent_Hashed(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "memory-store")

	got := s.Content("Reach me at jane@example.com, SSN 123-45-6789")
	assert.NotContains(t, got, "jane@example.com")
	assert.NotContains(t, got, "123-45-6789")
	assert.Contains(t, got, "[EMAIL:")
	assert.Contains(t, got, "[SSN:REDACTED]")
}

func TestContent_Truncates(t *testing.T) {
	s := NewSanitizer(PIILevelFull, "memory-store")

	got := s.Content(strings.Repeat("a", 200))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, got, maxPreview+3)

	assert.Equal(t, "short", s.Content("short"))
}

func TestContent_None(t *testing.T) {
	s := NewSanitizer(PIILevelNone, "memory-store")
	assert.Equal(t, "[REDACTED]", s.Content("anything"))
}
