// Package repositorytest assembles the domain services over an in-memory sqlite store for tests.
package repositorytest

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
	"github.com/janhq/agent-memory-store/internal/infrastructure/cache"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/databasetest"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	conversationrepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/conversation"
	messagerepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/message"
	steprepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/step"
	userrepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/user"
	workflowrepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/workflow"
	"github.com/janhq/agent-memory-store/internal/utils/telemetry"
)

// Services bundles every domain service sharing one database.
type Services struct {
	DB            *transaction.Database
	Conversations *conversation.Service
	Messages      *message.Service
	Steps         *step.Service
	WorkingMemory *workingmemory.Service
	Workflows     *workflow.Service
}

type options struct {
	scanLimit int
	cache     cache.Store
}

// Option customises New.
type Option func(*options)

// WithScanLimit overrides the unfiltered conversation scan limit.
func WithScanLimit(n int) Option {
	return func(o *options) { o.scanLimit = n }
}

// WithCache fronts the conversation repository with store.
func WithCache(store cache.Store) Option {
	return func(o *options) { o.cache = store }
}

// New returns services over a fresh migrated database private to t.
func New(t testing.TB, opts ...Option) *Services {
	t.Helper()

	o := options{scanLimit: conversation.DefaultScanLimit}
	for _, opt := range opts {
		opt(&o)
	}

	log := zerolog.Nop()
	db := databasetest.OpenDatabase(t)
	sanitizer := telemetry.NewSanitizer(telemetry.PIILevelHashed, "test")

	var conversations conversation.Repository = conversationrepo.NewConversationGormRepository(db)
	if o.cache != nil {
		conversations = conversationrepo.NewCachedRepository(conversations, o.cache, time.Minute, log)
	}
	messages := messagerepo.NewMessageGormRepository(db)
	steps := steprepo.NewStepGormRepository(db)
	users := userrepo.NewUserGormRepository(db)
	workflows := workflowrepo.NewWorkflowStateGormRepository(db)

	return &Services{
		DB:            db,
		Conversations: conversation.NewService(conversations, messages, steps, db, conversation.QueryLimits{UnfilteredScanLimit: o.scanLimit}, log),
		Messages:      message.NewService(messages, steps, db, sanitizer, log),
		Steps:         step.NewService(steps, db, log),
		WorkingMemory: workingmemory.NewService(conversations, users, db, sanitizer, log),
		Workflows:     workflow.NewService(workflows, db, log),
	}
}
