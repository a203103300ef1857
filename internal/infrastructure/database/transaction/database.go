// Package transaction carries a gorm transaction on the request context so repositories join it.
package transaction

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type TransactionContextKey struct{}

type afterCommitKey struct{}

// afterCommit collects the callbacks queued during one outermost transaction.
type afterCommit struct {
	mu  sync.Mutex
	fns []func(ctx context.Context)
}

func (a *afterCommit) add(fn func(ctx context.Context)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fns = append(a.fns, fn)
}

func (a *afterCommit) run(ctx context.Context) {
	a.mu.Lock()
	fns := a.fns
	a.fns = nil
	a.mu.Unlock()
	for _, fn := range fns {
		fn(ctx)
	}
}

// AfterCommit runs fn once the transaction on ctx commits, and drops it on rollback.
// Outside a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if hooks, ok := ctx.Value(afterCommitKey{}).(*afterCommit); ok && InTransaction(ctx) {
		hooks.add(fn)
		return
	}
	fn(ctx)
}

// WithTx returns a context carrying tx.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, TransactionContextKey{}, tx)
}

// Database hands repositories either the ambient transaction or the root connection.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db}
}

// GetTx returns the transaction on ctx, or the root connection, bound to ctx.
func (t *Database) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TransactionContextKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return t.db.WithContext(ctx)
}

// InTransaction reports whether ctx already carries a transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(TransactionContextKey{}).(*gorm.DB)
	return ok
}

// WithinTransaction runs fn in a transaction. Nested calls join the outer transaction.
// Callbacks queued with AfterCommit run after the outermost commit.
func (t *Database) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}
	hooks := &afterCommit{}
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(WithTx(ctx, tx), afterCommitKey{}, hooks))
	})
	if err != nil {
		return err
	}
	hooks.run(context.WithoutCancel(ctx))
	return nil
}

// Dialect returns the driver name, e.g. "postgres" or "sqlite".
func (t *Database) Dialect() string {
	return t.db.Dialector.Name()
}

// DB returns the root connection.
func (t *Database) DB() *gorm.DB {
	return t.db
}
