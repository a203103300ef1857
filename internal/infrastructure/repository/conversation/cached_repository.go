package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/infrastructure/cache"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	"github.com/janhq/agent-memory-store/internal/infrastructure/metrics"
)

// CachedRepository serves FindByVisibleID from a cache and invalidates on writes.
// Reads inside a transaction bypass the cache so uncommitted rows are never stored.
// Writes invalidate immediately and again after commit, which evicts any pre-commit row a
// concurrent reader cached in between.
type CachedRepository struct {
	conversation.Repository
	cache cache.Store
	ttl   time.Duration
	log   zerolog.Logger
}

var _ conversation.Repository = (*CachedRepository)(nil)

func NewCachedRepository(inner conversation.Repository, store cache.Store, ttl time.Duration, log zerolog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: inner,
		cache:      store,
		ttl:        ttl,
		log:        log.With().Str("component", "conversation-cache").Str("cache_type", store.Type()).Logger(),
	}
}

func (r *CachedRepository) FindByVisibleID(ctx context.Context, id string) (*conversation.Conversation, error) {
	if transaction.InTransaction(ctx) {
		return r.Repository.FindByVisibleID(ctx, id)
	}

	if data, err := r.cache.Get(ctx, id); err == nil {
		var conv conversation.Conversation
		if err := json.Unmarshal(data, &conv); err == nil {
			metrics.RecordCacheHit(r.cache.Type())
			return &conv, nil
		}
		r.log.Warn().Str("conversation_id", id).Msg("dropping undecodable cache entry")
		r.invalidate(ctx, id)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		r.log.Warn().Err(err).Msg("cache read failed")
	}
	metrics.RecordCacheMiss(r.cache.Type())

	conv, err := r.Repository.FindByVisibleID(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(conv); err == nil {
		if err := r.cache.Set(ctx, id, data, r.ttl); err != nil {
			r.log.Warn().Err(err).Msg("cache write failed")
		}
	}
	return conv, nil
}

func (r *CachedRepository) Update(ctx context.Context, conv *conversation.Conversation) error {
	err := r.Repository.Update(ctx, conv)
	r.invalidateOnCommit(ctx, conv.ID)
	return err
}

func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	err := r.Repository.Delete(ctx, id)
	r.invalidateOnCommit(ctx, id)
	return err
}

func (r *CachedRepository) invalidateOnCommit(ctx context.Context, id string) {
	r.invalidate(ctx, id)
	if transaction.InTransaction(ctx) {
		transaction.AfterCommit(ctx, func(ctx context.Context) { r.invalidate(ctx, id) })
	}
}

func (r *CachedRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(context.WithoutCancel(ctx), id); err != nil {
		r.log.Warn().Err(err).Str("conversation_id", id).Msg("cache invalidation failed")
	}
}
