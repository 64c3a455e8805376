package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) Database {
	t.Helper()
	db, err := InitDB(DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	// InitDB already migrated once; a second run must be a no-op.
	require.NoError(t, db.Migrate(context.Background()))
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, table := range []string{"events", "event_dates", "event_time_slots", "responses", "participant_passwords"} {
		var count int
		err := db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "missing table %s", table)
	}
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, execErr := tx.ExecContext(ctx, `INSERT INTO events (id, name) VALUES ('E1', 'Poll')`); execErr != nil {
			return execErr
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events`))
	assert.Zero(t, count)
}

func TestWithTransaction_Commits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		_, execErr := tx.ExecContext(ctx, `INSERT INTO events (id, name) VALUES ('E1', 'Poll')`)
		return execErr
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events`))
	assert.Equal(t, 1, count)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.ExecContext(ctx,
		`INSERT INTO responses (event_id, participant_name, date, time_slot)
		 VALUES ('missing', 'Alice', 'mon', '9am')`)
	assert.Error(t, err)
}
