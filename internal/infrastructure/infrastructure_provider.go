package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/janhq/agent-memory-store/internal/config"
	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/domain/user"
	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/domain/workingmemory"
	"github.com/janhq/agent-memory-store/internal/infrastructure/cache"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	"github.com/janhq/agent-memory-store/internal/infrastructure/logger"
	"github.com/janhq/agent-memory-store/internal/infrastructure/repository"
	conversationrepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/conversation"
	messagerepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/message"
	steprepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/step"
	userrepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/user"
	workflowrepo "github.com/janhq/agent-memory-store/internal/infrastructure/repository/workflow"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideCache opens the conversation cache selected by CONVERSATION_CACHE_TYPE.
func ProvideCache(cfg *config.Config, log zerolog.Logger) (cache.Store, func(), error) {
	store, err := cache.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close cache")
		}
	}
	return store, cleanup, nil
}

// ProvideDatabase connects to the configured engine and brings the schema up to date.
// With a redis cache the migration runs under a distributed lock.
func ProvideDatabase(cfg *config.Config, store cache.Store, log zerolog.Logger) (*gorm.DB, func(), error) {
	db, err := database.Connect(database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		SQLitePath:      cfg.SQLitePath,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}

	var locker database.Locker
	if redisCache, ok := store.(*cache.RedisCache); ok {
		locker = redisCache
	}
	if err := database.MigrateWithLock(context.Background(), db, locker, log); err != nil {
		cleanup()
		return nil, nil, err
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("database ready")
	return db, cleanup, nil
}

// ProvideTransactionDatabase provides a transaction database wrapper
func ProvideTransactionDatabase(db *gorm.DB) *transaction.Database {
	return transaction.NewDatabase(db)
}

// ProvideConversationRepository puts the read cache in front of the gorm repository.
func ProvideConversationRepository(repo *conversationrepo.ConversationGormRepository, store cache.Store, cfg *config.Config, log zerolog.Logger) conversation.Repository {
	if cfg.CacheType == config.CacheNone {
		return repo
	}
	return conversationrepo.NewCachedRepository(repo, store, cfg.CacheTTL, log)
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	logger.ProvideLogger,
	ProvideCache,
	ProvideDatabase,
	ProvideTransactionDatabase,
	repository.RepositoryProvider,
	ProvideConversationRepository,

	wire.Bind(new(conversation.MessageCleaner), new(*messagerepo.MessageGormRepository)),
	wire.Bind(new(conversation.StepCleaner), new(*steprepo.StepGormRepository)),
	wire.Bind(new(conversation.Transactor), new(*transaction.Database)),
	wire.Bind(new(message.Repository), new(*messagerepo.MessageGormRepository)),
	wire.Bind(new(message.StepCleaner), new(*steprepo.StepGormRepository)),
	wire.Bind(new(message.Transactor), new(*transaction.Database)),
	wire.Bind(new(step.Repository), new(*steprepo.StepGormRepository)),
	wire.Bind(new(step.Transactor), new(*transaction.Database)),
	wire.Bind(new(user.Repository), new(*userrepo.UserGormRepository)),
	wire.Bind(new(workingmemory.Transactor), new(*transaction.Database)),
	wire.Bind(new(workflow.Repository), new(*workflowrepo.WorkflowStateGormRepository)),
	wire.Bind(new(workflow.Transactor), new(*transaction.Database)),
)
