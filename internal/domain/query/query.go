// Package query holds ordering and pagination helpers shared by the repositories.
package query

import "strings"

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection returns Asc only for the exact value "ASC"; anything else sorts descending.
func ParseDirection(raw string) Direction {
	if raw == string(Asc) {
		return Asc
	}
	return Desc
}

// SQL returns the direction keyword.
func (d Direction) SQL() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}

// Page is an offset and limit window over a sorted set.
type Page struct {
	Limit  int
	Offset int
}

// Normalize fills the default limit and clamps negative values.
func (p Page) Normalize(defaultLimit int) Page {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Reverse reverses items in place and returns them.
func Reverse[T any](items []T) []T {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// TrimSpaceAll drops blank entries and trims the rest.
func TrimSpaceAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
