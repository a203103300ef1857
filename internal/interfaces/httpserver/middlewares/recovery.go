package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// Recovery turns a handler panic into a 500 error body and logs it.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("request_id", RequestIDFromContext(c)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		platformerrors.WriteInternalError(c, "internal server error")
	})
}
