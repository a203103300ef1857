// Package responses holds the response envelopes shared by the handlers.
package responses

import "github.com/janhq/agent-memory-store/internal/utils/platformerrors"

// DataResponse wraps read results. Data is null when a single record is absent.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// NewDataResponse wraps data.
func NewDataResponse[T any](data T) DataResponse[T] {
	return DataResponse[T]{Data: data}
}

// ErrorResponse is the error body written by platformerrors.
type ErrorResponse = platformerrors.HTTPErrorResponse

// SuccessResponse acknowledges a mutation that has no other result.
type SuccessResponse struct {
	Success bool `json:"success"`
}
