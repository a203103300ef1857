package conversationhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/requests"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/responses"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// ConversationHandler serves the conversation endpoints.
type ConversationHandler struct {
	service *conversation.Service
	log     zerolog.Logger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(service *conversation.Service, log zerolog.Logger) *ConversationHandler {
	return &ConversationHandler{
		service: service,
		log:     log.With().Str("component", "conversation-handler").Logger(),
	}
}

// RegisterRouter attaches the conversation routes.
func (h *ConversationHandler) RegisterRouter(router gin.IRouter) {
	conversations := router.Group("/conversations")
	conversations.POST("", h.Create)
	conversations.GET("", h.Query)
	conversations.GET("/:id", h.Get)
	conversations.PATCH("/:id", h.Update)
	conversations.DELETE("/:id", h.Remove)

	router.GET("/resources/:resource_id/conversations", h.ListByResource)
	router.GET("/users/:user_id/conversations", h.ListByUser)
}

// Create godoc
// @Summary Create a conversation
// @Description Creates a conversation with a caller supplied id. An existing id is a conflict.
// @Tags Conversations API
// @Accept json
// @Produce json
// @Param request body conversation.CreateParams true "Conversation to create"
// @Success 201 {object} conversation.Conversation "Created conversation"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 409 {object} responses.ErrorResponse "Conversation already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/conversations [post]
func (h *ConversationHandler) Create(reqCtx *gin.Context) {
	var req conversation.CreateParams
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	conv, err := h.service.Create(reqCtx.Request.Context(), req)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusCreated, conv)
}

// Get godoc
// @Summary Get a conversation
// @Description Returns the conversation, or null data when it does not exist.
// @Tags Conversations API
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} responses.DataResponse[conversation.Conversation] "Conversation or null"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/conversations/{id} [get]
func (h *ConversationHandler) Get(reqCtx *gin.Context) {
	conv, err := h.service.Get(reqCtx.Request.Context(), reqCtx.Param("id"))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(conv))
}

// ListByResource godoc
// @Summary List conversations of a resource
// @Description Returns every conversation attached to the resource in creation order.
// @Tags Conversations API
// @Produce json
// @Param resource_id path string true "Resource ID"
// @Success 200 {object} responses.DataResponse[[]conversation.Conversation] "Conversations"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/resources/{resource_id}/conversations [get]
func (h *ConversationHandler) ListByResource(reqCtx *gin.Context) {
	convs, err := h.service.ListByResource(reqCtx.Request.Context(), reqCtx.Param("resource_id"))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(convs))
}

// ListByUser godoc
// @Summary List conversations of a user
// @Description Returns one page of the user's conversations. Only order_direction=ASC sorts ascending.
// @Tags Conversations API
// @Produce json
// @Param user_id path string true "User ID"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Rows to skip"
// @Param order_by query string false "createdAt, updatedAt or title"
// @Param order_direction query string false "ASC or DESC"
// @Success 200 {object} responses.DataResponse[[]conversation.Conversation] "Conversations"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/users/{user_id}/conversations [get]
func (h *ConversationHandler) ListByUser(reqCtx *gin.Context) {
	q, err := requests.GetListQuery(reqCtx)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}

	convs, err := h.service.ListByUser(reqCtx.Request.Context(), reqCtx.Param("user_id"), listOptions(q))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(convs))
}

// Query godoc
// @Summary Query conversations
// @Description Lists conversations filtered by user and/or resource. Without filters only the most recent conversations are scanned.
// @Tags Conversations API
// @Produce json
// @Param user_id query string false "User ID"
// @Param resource_id query string false "Resource ID"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Rows to skip"
// @Param order_by query string false "createdAt, updatedAt or title"
// @Param order_direction query string false "ASC or DESC"
// @Success 200 {object} responses.DataResponse[[]conversation.Conversation] "Conversations"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/conversations [get]
func (h *ConversationHandler) Query(reqCtx *gin.Context) {
	q, err := requests.GetListQuery(reqCtx)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}

	filter := conversation.Filter{
		UserID:     reqCtx.Query("user_id"),
		ResourceID: reqCtx.Query("resource_id"),
	}
	convs, err := h.service.Query(reqCtx.Request.Context(), filter, listOptions(q))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(convs))
}

// Update godoc
// @Summary Update a conversation
// @Description Applies a sparse patch of title, resourceId and metadata. Metadata is replaced, not merged.
// @Tags Conversations API
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body conversation.UpdateParams true "Fields to change"
// @Success 200 {object} conversation.Conversation "Updated conversation"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 404 {object} responses.ErrorResponse "Conversation not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/conversations/{id} [patch]
func (h *ConversationHandler) Update(reqCtx *gin.Context) {
	var req conversation.UpdateParams
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	conv, err := h.service.Update(reqCtx.Request.Context(), reqCtx.Param("id"), req)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, conv)
}

// Remove godoc
// @Summary Delete a conversation
// @Description Deletes the conversation with all of its messages and steps.
// @Tags Conversations API
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} responses.SuccessResponse "Deleted"
// @Failure 404 {object} responses.ErrorResponse "Conversation not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/conversations/{id} [delete]
func (h *ConversationHandler) Remove(reqCtx *gin.Context) {
	if err := h.service.Remove(reqCtx.Request.Context(), reqCtx.Param("id")); err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.SuccessResponse{Success: true})
}

func listOptions(q requests.ListQuery) conversation.ListOptions {
	return conversation.NewListOptions(q.Limit, q.Offset, q.OrderBy, q.OrderDirection)
}
