// Package databasetest opens isolated, migrated in-memory databases for tests.
package databasetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/janhq/agent-memory-store/internal/infrastructure/database"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
)

// Open returns a migrated sqlite database private to t. It is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel:   gormlogger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.AutoMigrate(context.Background(), db, zerolog.Nop()))
	return db
}

// OpenDatabase wraps Open in a transaction-aware Database.
func OpenDatabase(t testing.TB) *transaction.Database {
	t.Helper()
	return transaction.NewDatabase(Open(t))
}
