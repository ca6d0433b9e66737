package db_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/db"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(ctx, sqlDB))
	require.NoError(t, db.Migrate(ctx, sqlDB))

	var applied int
	require.NoError(t, sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)

	for _, table := range []string{"review_items", "review_history", "shortcuts"} {
		var name string
		err := sqlDB.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_EnforcesStrengthFloor(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, db.Migrate(ctx, sqlDB))

	_, err = sqlDB.ExecContext(ctx, `INSERT INTO review_items (item_id, strength, interval_days, next_due_at) VALUES ('a', 1.2, 0, 0)`)
	assert.Error(t, err)
}
