package messagehandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/requests"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/responses"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// AddManyRequest is the body of the batch endpoint.
type AddManyRequest struct {
	Messages []message.AddParams `json:"messages"`
}

// MessageHandler serves the message endpoints.
type MessageHandler struct {
	service *message.Service
	log     zerolog.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service *message.Service, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With().Str("component", "message-handler").Logger(),
	}
}

// RegisterRouter attaches the message routes.
func (h *MessageHandler) RegisterRouter(router gin.IRouter) {
	router.POST("/messages", h.Add)
	router.POST("/messages/batch", h.AddMany)
	router.GET("/conversations/:id/messages", h.Get)
	router.DELETE("/users/:user_id/messages", h.Clear)
}

// Add godoc
// @Summary Add a message
// @Description Inserts the message, or replaces role, parts and metadata when the id already exists. createdAt never changes.
// @Tags Messages API
// @Accept json
// @Produce json
// @Param request body message.AddParams true "Message"
// @Success 200 {object} message.AddResult "Stored"
// @Failure 400 {object} responses.ErrorResponse "Invalid message"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/messages [post]
func (h *MessageHandler) Add(reqCtx *gin.Context) {
	var req message.AddParams
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	result, err := h.service.Add(reqCtx.Request.Context(), req)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// AddMany godoc
// @Summary Add messages in order
// @Description Validates every message first, then upserts them one by one. The batch is not atomic:
// @Description when a write fails, the error body carries the results applied before it under data.
// @Tags Messages API
// @Accept json
// @Produce json
// @Param request body AddManyRequest true "Messages"
// @Success 200 {object} responses.DataResponse[[]message.AddResult] "Stored"
// @Failure 400 {object} responses.ErrorResponse "Invalid message"
// @Failure 500 {object} responses.ErrorResponse "Internal server error, with the results applied before it in data"
// @Router /v1/messages/batch [post]
func (h *MessageHandler) AddMany(reqCtx *gin.Context) {
	var req AddManyRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	results, err := h.service.AddMany(reqCtx.Request.Context(), req.Messages)
	if err != nil {
		if len(results) > 0 {
			platformerrors.WriteErrorWithData(reqCtx, err, results, h.log)
			return
		}
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(results))
}

// Get godoc
// @Summary Get messages
// @Description Returns the most recent messages of a user in a conversation, oldest first. before and after are exclusive.
// @Tags Messages API
// @Produce json
// @Param id path string true "Conversation ID"
// @Param user_id query string true "User ID"
// @Param limit query int false "Window size (default 100)"
// @Param before query string false "RFC 3339 upper bound"
// @Param after query string false "RFC 3339 lower bound"
// @Param roles query []string false "Roles to keep" collectionFormat(csv)
// @Success 200 {object} responses.DataResponse[[]message.Message] "Messages"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/conversations/{id}/messages [get]
func (h *MessageHandler) Get(reqCtx *gin.Context) {
	params, err := getParams(reqCtx)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}

	msgs, err := h.service.Get(reqCtx.Request.Context(), params)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(msgs))
}

// Clear godoc
// @Summary Clear message history
// @Description Deletes the user's messages and steps in one conversation, or in every conversation the user owns. Conversations are kept.
// @Tags Messages API
// @Produce json
// @Param user_id path string true "User ID"
// @Param conversation_id query string false "Conversation ID"
// @Success 200 {object} message.ClearResult "Removed counts"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/users/{user_id}/messages [delete]
func (h *MessageHandler) Clear(reqCtx *gin.Context) {
	result, err := h.service.Clear(reqCtx.Request.Context(), reqCtx.Param("user_id"), reqCtx.Query("conversation_id"))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

func getParams(reqCtx *gin.Context) (message.GetParams, error) {
	limit, err := requests.GetIntQuery(reqCtx, "limit")
	if err != nil {
		return message.GetParams{}, err
	}
	before, err := requests.GetTimeQuery(reqCtx, "before")
	if err != nil {
		return message.GetParams{}, err
	}
	after, err := requests.GetTimeQuery(reqCtx, "after")
	if err != nil {
		return message.GetParams{}, err
	}
	return message.GetParams{
		UserID:         reqCtx.Query("user_id"),
		ConversationID: reqCtx.Param("id"),
		Limit:          limit,
		Before:         before,
		After:          after,
		Roles:          requests.GetListValues(reqCtx, "roles"),
	}, nil
}
