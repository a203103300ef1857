package handlers

import (
	"github.com/google/wire"

	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/conversationhandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/messagehandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/stephandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/workflowhandler"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers/workingmemoryhandler"
)

var HandlerProvider = wire.NewSet(
	conversationhandler.NewConversationHandler,
	messagehandler.NewMessageHandler,
	stephandler.NewStepHandler,
	workingmemoryhandler.NewWorkingMemoryHandler,
	workflowhandler.NewWorkflowHandler,
)
