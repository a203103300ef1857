package memoryclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels matched by errors.Is against an *APIError.
var (
	ErrNotFound      = errors.New("memory store: not found")
	ErrAlreadyExists = errors.New("memory store: already exists")
	ErrValidation    = errors.New("memory store: validation failed")
)

// APIError is an error response returned by the memory store.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	Code       string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.RequestID != "" {
		return fmt.Sprintf("memory store %d %s: %s (request %s)", e.StatusCode, e.Type, msg, e.RequestID)
	}
	return fmt.Sprintf("memory store %d %s: %s", e.StatusCode, e.Type, msg)
}

// Is maps the status code onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrAlreadyExists:
		return e.StatusCode == http.StatusConflict
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest
	}
	return false
}

type errorResponse struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      string `json:"code"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}
