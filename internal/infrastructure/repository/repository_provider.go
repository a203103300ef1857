// Package repository groups the gorm repositories for dependency injection.
package repository

import (
	"github.com/google/wire"

	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/conversation"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/message"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/step"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/user"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository/workflow"
)

var RepositoryProvider = wire.NewSet(
	conversation.NewConversationGormRepository,
	message.NewMessageGormRepository,
	step.NewStepGormRepository,
	user.NewUserGormRepository,
	workflow.NewWorkflowStateGormRepository,
)
