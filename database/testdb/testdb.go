// Package testdb opens a migrated, seeded SQLite database for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cultivos/database"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "cultivos.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, database.Migrate(db, zap.NewNop()))
	require.NoError(t, database.Seed(db, zap.NewNop()))
	return db
}
