package domain

import (
	"github.com/google/wire"

	"github.com/janhq/agent-memory-store/internal/config"
	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
	"github.com/janhq/agent-memory-store/internal/utils/telemetry"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	conversation.NewService,
	message.NewService,
	step.NewService,
	workingmemory.NewService,
	workflow.NewService,

	ProvideQueryLimits,
	ProvideSanitizer,
)

func ProvideQueryLimits(cfg *config.Config) conversation.QueryLimits {
	return conversation.QueryLimits{UnfilteredScanLimit: cfg.ConversationScanLimit}
}

// ProvideSanitizer builds the PII sanitizer for PII_LEVEL.
func ProvideSanitizer(cfg *config.Config) *telemetry.Sanitizer {
	return telemetry.NewSanitizer(telemetry.PIILevel(cfg.PIILevel), cfg.ServiceName)
}
