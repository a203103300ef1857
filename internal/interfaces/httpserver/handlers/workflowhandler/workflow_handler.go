package workflowhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/requests"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/responses"
	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// WorkflowHandler serves the workflow state endpoints.
type WorkflowHandler struct {
	service *workflow.Service
	log     zerolog.Logger
}

// NewWorkflowHandler creates a new workflow state handler
func NewWorkflowHandler(service *workflow.Service, log zerolog.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		service: service,
		log:     log.With().Str("component", "workflow-handler").Logger(),
	}
}

// RegisterRouter attaches the workflow state routes.
func (h *WorkflowHandler) RegisterRouter(router gin.IRouter) {
	states := router.Group("/workflow-states")
	states.GET("", h.QueryRuns)
	states.GET("/:execution_id", h.Get)
	states.PUT("/:execution_id", h.Set)
	states.PATCH("/:execution_id", h.Update)

	router.GET("/workflows/:workflow_id/suspended", h.GetSuspended)
}

// Get godoc
// @Summary Get a workflow run
// @Description Returns the state of an execution, or null data when it is unknown.
// @Tags Workflow State API
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Success 200 {object} responses.DataResponse[workflow.State] "State or null"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/workflow-states/{execution_id} [get]
func (h *WorkflowHandler) Get(reqCtx *gin.Context) {
	state, err := h.service.Get(reqCtx.Request.Context(), reqCtx.Param("execution_id"))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(state))
}

// QueryRuns godoc
// @Summary Query workflow runs
// @Description Lists runs newest first. from and to are inclusive bounds on createdAt; without limit every match is returned, limit=0 returns none.
// @Tags Workflow State API
// @Produce json
// @Param workflow_id query string false "Workflow ID"
// @Param status query string false "running, suspended, completed, cancelled or error"
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} responses.DataResponse[[]workflow.State] "Runs"
// @Failure 400 {object} responses.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/workflow-states [get]
func (h *WorkflowHandler) QueryRuns(reqCtx *gin.Context) {
	params, err := queryRunsParams(reqCtx)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}

	states, err := h.service.QueryRuns(reqCtx.Request.Context(), params)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(states))
}

// Set godoc
// @Summary Set a workflow run
// @Description Creates the run or replaces every field except createdAt.
// @Tags Workflow State API
// @Accept json
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Param request body workflow.State true "Full state"
// @Success 200 {object} workflow.Result "Stored"
// @Failure 400 {object} responses.ErrorResponse "Invalid state"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/workflow-states/{execution_id} [put]
func (h *WorkflowHandler) Set(reqCtx *gin.Context) {
	var req workflow.State
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	result, err := h.service.Set(reqCtx.Request.Context(), reqCtx.Param("execution_id"), req)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// Update godoc
// @Summary Update a workflow run
// @Description Patches the supplied fields and stamps updatedAt.
// @Tags Workflow State API
// @Accept json
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Param request body workflow.Patch true "Fields to change"
// @Success 200 {object} workflow.Result "Updated"
// @Failure 400 {object} responses.ErrorResponse "Invalid patch"
// @Failure 404 {object} responses.ErrorResponse "Run not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/workflow-states/{execution_id} [patch]
func (h *WorkflowHandler) Update(reqCtx *gin.Context) {
	var req workflow.Patch
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteError(reqCtx, requests.BindError(reqCtx, err), h.log)
		return
	}

	result, err := h.service.Update(reqCtx.Request.Context(), reqCtx.Param("execution_id"), req)
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, result)
}

// GetSuspended godoc
// @Summary List suspended runs
// @Description Returns the suspended runs of a workflow, newest first.
// @Tags Workflow State API
// @Produce json
// @Param workflow_id path string true "Workflow ID"
// @Success 200 {object} responses.DataResponse[[]workflow.State] "Suspended runs"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/workflows/{workflow_id}/suspended [get]
func (h *WorkflowHandler) GetSuspended(reqCtx *gin.Context) {
	states, err := h.service.GetSuspended(reqCtx.Request.Context(), reqCtx.Param("workflow_id"))
	if err != nil {
		platformerrors.WriteError(reqCtx, err, h.log)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.NewDataResponse(states))
}

func queryRunsParams(reqCtx *gin.Context) (workflow.QueryRunsParams, error) {
	var params workflow.QueryRunsParams
	var err error
	if params.From, err = requests.GetTimeQuery(reqCtx, "from"); err != nil {
		return params, err
	}
	if params.To, err = requests.GetTimeQuery(reqCtx, "to"); err != nil {
		return params, err
	}
	if params.Limit, err = requests.GetOptionalIntQuery(reqCtx, "limit"); err != nil {
		return params, err
	}
	if params.Offset, err = requests.GetIntQuery(reqCtx, "offset"); err != nil {
		return params, err
	}
	params.WorkflowID = reqCtx.Query("workflow_id")
	params.Status = workflow.Status(reqCtx.Query("status"))
	return params, nil
}
