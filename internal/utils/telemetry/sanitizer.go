// Package telemetry scrubs user identifiers and stored content before they reach logs or spans.
package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// PIILevel controls how much user data is kept in telemetry.
type PIILevel string

const (
	// PIILevelNone redacts user content entirely
	PIILevelNone PIILevel = "none"
	// PIILevelHashed replaces identifiers and detected PII with salted hashes
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull keeps everything as-is
	PIILevelFull PIILevel = "full"
)

const redacted = "[REDACTED]"

// maxPreview bounds the number of runes of stored content written to a log line.
const maxPreview = 64

type rule struct {
	label   string
	pattern *regexp.Regexp
	hashed  bool
}

// Sanitizer applies the configured PII level to identifiers and free text.
type Sanitizer struct {
	level PIILevel
	salt  string
	rules []rule
}

// NewSanitizer creates a sanitizer; salt namespaces hashes so they cannot be joined across deployments.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{
		level: level,
		salt:  salt,
		rules: []rule{
			{label: "EMAIL", pattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`), hashed: true},
			{label: "SSN", pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
			{label: "CC", pattern: regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
			{label: "PHONE", pattern: regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`), hashed: true},
			{label: "IP", pattern: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), hashed: true},
		},
	}
}

// Level reports the configured PII level.
func (s *Sanitizer) Level() PIILevel {
	return s.level
}

// UserID returns a log-safe form of a user id.
func (s *Sanitizer) UserID(userID string) string {
	if userID == "" {
		return ""
	}
	switch s.level {
	case PIILevelFull:
		return userID
	case PIILevelNone:
		return redacted
	default:
		return s.hash(userID)
	}
}

// Content returns a log-safe, truncated preview of stored text such as working memory.
func (s *Sanitizer) Content(content string) string {
	switch s.level {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return preview(content)
	default:
		return preview(s.scrub(content))
	}
}

func (s *Sanitizer) scrub(input string) string {
	out := input
	for _, r := range s.rules {
		r := r
		out = r.pattern.ReplaceAllStringFunc(out, func(match string) string {
			if r.hashed {
				return fmt.Sprintf("[%s:%s]", r.label, s.hash(match))
			}
			return fmt.Sprintf("[%s:REDACTED]", r.label)
		})
	}
	return out
}

func (s *Sanitizer) hash(data string) string {
	sum := sha256.Sum256([]byte(data + s.salt))
	return hex.EncodeToString(sum[:])[:8]
}

func preview(content string) string {
	if utf8.RuneCountInString(content) <= maxPreview {
		return content
	}
	runes := []rune(content)
	return string(runes[:maxPreview]) + "..."
}
