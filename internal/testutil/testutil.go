package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// A single connection is used so every query sees the same in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// Clock is a settable clock for tests that advance time.
type Clock struct {
	Now time.Time
}

func (c *Clock) Func() func() time.Time {
	return func() time.Time { return c.Now }
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.Now = c.Now.Add(d)
}
