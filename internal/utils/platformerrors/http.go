package platformerrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse represents the standard error response format.
type HTTPErrorResponse struct {
	Error *HTTPErrorDetail `json:"error"`
	// Data carries work completed before the failure, when there is any.
	Data any `json:"data,omitempty"`
}

// HTTPErrorDetail contains error details for HTTP responses.
type HTTPErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Error type strings carried in HTTPErrorDetail.Type.
const (
	HTTPTypeNotFound       = "not_found_error"
	HTTPTypeValidation     = "validation_error"
	HTTPTypeConflict       = "conflict_error"
	HTTPTypeNotImplemented = "not_implemented_error"
	HTTPTypeTimeout        = "timeout_error"
	HTTPTypeInternal       = "internal_error"
)

// WriteHTTPError writes a PlatformError as an HTTP response.
func WriteHTTPError(c *gin.Context, err *PlatformError, log zerolog.Logger) {
	writeHTTPError(c, err, nil, log)
}

func writeHTTPError(c *gin.Context, err *PlatformError, data any, log zerolog.Logger) {
	if err == nil {
		WriteInternalError(c, "unknown error")
		return
	}

	LogError(log, err)

	c.AbortWithStatusJSON(ErrorTypeToHTTPStatus(err.Type), HTTPErrorResponse{
		Error: &HTTPErrorDetail{
			Message:   err.Message,
			Type:      errorTypeToString(err.Type),
			Code:      err.UUID,
			RequestID: err.RequestID,
		},
		Data: data,
	})
}

// WriteErrorWithData writes err like WriteError and attaches data to the body.
func WriteErrorWithData(c *gin.Context, err error, data any, log zerolog.Logger) {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		writeHTTPError(c, platformErr, data, log)
		return
	}
	WriteError(c, err, log)
}

// WriteError writes a generic error as an HTTP response.
// Errors that are not PlatformErrors are reported as internal errors.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		WriteInternalError(c, "unknown error")
		return
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		WriteHTTPError(c, platformErr, log)
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	WriteInternalError(c, err.Error())
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, HTTPErrorResponse{
		Error: &HTTPErrorDetail{Message: message, Type: HTTPTypeNotFound},
	})
}

// WriteValidationError writes a 400 Bad Request response.
func WriteValidationError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPErrorResponse{
		Error: &HTTPErrorDetail{
			Message:   message,
			Type:      HTTPTypeValidation,
			RequestID: RequestIDFromContext(c.Request.Context()),
		},
	})
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPErrorResponse{
		Error: &HTTPErrorDetail{Message: message, Type: HTTPTypeInternal},
	})
}

// errorTypeToString converts an ErrorType to a snake_case string for API responses.
func errorTypeToString(t ErrorType) string {
	switch t {
	case ErrorTypeNotFound:
		return HTTPTypeNotFound
	case ErrorTypeValidation:
		return HTTPTypeValidation
	case ErrorTypeConflict:
		return HTTPTypeConflict
	case ErrorTypeNotImplemented:
		return HTTPTypeNotImplemented
	case ErrorTypeTimeout:
		return HTTPTypeTimeout
	default:
		return HTTPTypeInternal
	}
}
