// Package testdb opens throwaway databases for repository tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"dronedelivery/internal/adapters/out/postgres/accountrepo"
	"dronedelivery/internal/adapters/out/postgres/addressrepo"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists the schema in dependency order.
var Tables = []any{
	&addressrepo.AddressDTO{},
	&accountrepo.AccountDTO{},
	&orderrepo.OrderDTO{},
}

// OpenSQLite returns an in-memory SQLite database with foreign keys enforced and the
// schema auto-migrated. The pool is capped at one connection, so callers must not issue
// statements outside an open transaction while it is running.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Tables...))
	return db
}

// Truncate removes all rows, children first.
func Truncate(t testing.TB, db *gorm.DB) {
	t.Helper()
	for _, table := range []string{"orders", "accounts", "addresses"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
}
