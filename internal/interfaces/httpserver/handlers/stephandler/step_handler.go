package stephandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/requests"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/responses"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// SaveRequest is the body of the save endpoint.
type SaveRequest struct {
	Steps []step.Step `json:"steps"`
}

// StepHandler serves the step endpoints.
type StepHandler struct {
	service *step.Service
	log     zerolog.Logger
}

// NewStepHandler creates a new step handler
func NewStepHandler(service *step.Service, log zerolog.Logger) *StepHandler {
	return &StepHandler{
		service: service,
		log:     log.With().Str("component", "step-handler").Logger(),
	}
}

// RegisterRouter attaches the step routes.
func (h *StepHandler) RegisterRouter(router gin.IRouter) {
	router.POST("/steps", h.Save)
	router.GET("/conversations/:id/steps", h.Get)
}

// Save godoc
// @Summary Save steps
// @Description Upserts each step by id. Existing steps keep identity, ownership and createdAt.
// @Tags Steps API
// @Accept json
// @Produce json
// @Param request body SaveRequest true "Steps"
// @Success 200 {object} step.SaveResult "Saved"
// @Failure 400 {object} responses.ErrorResponse "Invalid step"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/steps [post]
func (h *StepHandler) Save(reqCtx *gin.Context) {
	var req SaveRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	result, err := h.service.Save(reqCtx.Request.Context(), req.Steps)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary Get steps
// @Description Returns the steps of a user in a conversation by ascending step index. limit keeps the last steps.
// @Tags Steps API
// @Produce json
// @Param id path string true "Conversation ID"
// @Param user_id query string true "User ID"
// @Param limit query int false "Keep only the last N steps"
// @Param operation_id query string false "Operation ID"
// @Success 200 {object} responses.DataResponse[[]step.Step] "Steps"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/conversations/{id}/steps [get]
func (h *StepHandler) Get(reqCtx *gin.Context) {
	limit, err := requests.GetIntQuery(reqCtx, "limit")
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}

	steps, err := h.service.Get(reqCtx.Request.Context(), step.GetParams{
		UserID:         reqCtx.Query("user_id"),
		ConversationID: reqCtx.Param("id"),
		Limit:          limit,
		OperationID:    reqCtx.Query("operation_id"),
	})
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(steps))
}
