package workingmemoryhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/requests"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/responses"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// WorkingMemoryHandler serves the scoped working memory endpoints.
type WorkingMemoryHandler struct {
	service *workingmemory.Service
	log     zerolog.Logger
}

// NewWorkingMemoryHandler creates a new working memory handler
func NewWorkingMemoryHandler(service *workingmemory.Service, log zerolog.Logger) *WorkingMemoryHandler {
	return &WorkingMemoryHandler{
		service: service,
		log:     log.With().Str("component", "working-memory-handler").Logger(),
	}
}

// RegisterRouter attaches the working memory routes.
func (h *WorkingMemoryHandler) RegisterRouter(router gin.IRouter) {
	router.GET("/working-memory", h.Get)
	router.PUT("/working-memory", h.Set)
	router.DELETE("/working-memory", h.Remove)
}

// Get godoc
// @Summary Get working memory
// @Description Returns the stored text for the scope, or null data when nothing is stored or the scope id is missing.
// @Tags Working Memory API
// @Produce json
// @Param scope query string true "conversation or user"
// @Param conversation_id query string false "Conversation ID for the conversation scope"
// @Param user_id query string false "User ID for the user scope"
// @Success 200 {object} responses.DataResponse[string] "Working memory or null"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/working-memory [get]
func (h *WorkingMemoryHandler) Get(reqCtx *gin.Context) {
	content, err := h.service.Get(reqCtx.Request.Context(), scopeParams(reqCtx))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(content))
}

// Set godoc
// @Summary Set working memory
// @Description Stores the text under the scope. The user record is created on first write; a missing conversation is not found.
// @Tags Working Memory API
// @Accept json
// @Produce json
// @Param request body workingmemory.SetParams true "Scope and content"
// @Success 200 {object} workingmemory.Result "success is false when the scope is unsatisfied"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 404 {object} responses.ErrorResponse "Conversation not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/working-memory [put]
func (h *WorkingMemoryHandler) Set(reqCtx *gin.Context) {
	var req workingmemory.SetParams
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	result, err := h.service.Set(reqCtx.Request.Context(), req)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// Remove godoc
// @Summary Remove working memory
// @Description Drops the stored text. A missing record or key is a successful no-op.
// @Tags Working Memory API
// @Produce json
// @Param scope query string true "conversation or user"
// @Param conversation_id query string false "Conversation ID for the conversation scope"
// @Param user_id query string false "User ID for the user scope"
// @Success 200 {object} workingmemory.Result "success is false when the scope is unsatisfied"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/working-memory [delete]
func (h *WorkingMemoryHandler) Remove(reqCtx *gin.Context) {
	result, err := h.service.Remove(reqCtx.Request.Context(), scopeParams(reqCtx))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func scopeParams(reqCtx *gin.Context) workingmemory.Params {
	return workingmemory.Params{
		Scope:          workingmemory.Scope(reqCtx.Query("scope")),
		ConversationID: reqCtx.Query("conversation_id"),
		UserID:         reqCtx.Query("user_id"),
	}
}
