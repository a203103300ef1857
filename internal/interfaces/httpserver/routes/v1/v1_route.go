package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/conversationhandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/messagehandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/stephandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/workflowhandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/workingmemoryhandler"
)

type V1Route struct {
	conversation  *conversationhandler.ConversationHandler
	message       *messagehandler.MessageHandler
	step          *stephandler.StepHandler
	workingMemory *workingmemoryhandler.WorkingMemoryHandler
	workflow      *workflowhandler.WorkflowHandler
}

func NewV1Route(
	conversation *conversationhandler.ConversationHandler,
	message *messagehandler.MessageHandler,
	step *stephandler.StepHandler,
	workingMemory *workingmemoryhandler.WorkingMemoryHandler,
	workflow *workflowhandler.WorkflowHandler,
) *V1Route {
	return &V1Route{
		conversation,
		message,
		step,
		workingMemory,
		workflow,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")

	v1Route.conversation.RegisterRouter(v1Router)
	v1Route.message.RegisterRouter(v1Router)
	v1Route.step.RegisterRouter(v1Router)
	v1Route.workingMemory.RegisterRouter(v1Router)
	v1Route.workflow.RegisterRouter(v1Router)
}
