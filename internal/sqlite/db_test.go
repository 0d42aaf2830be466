package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"cases", "activity_log"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}

	// idempotent
	require.NoError(t, db.RunMigrations())
}

func TestNegativeValuesRejectedBySchema(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO cases (workspace_id, case_id, auction_id, nft_id, reserve, collateral,
		commit_minutes, reveal_minutes, finalize_minutes, bidders) VALUES ('ws', '01', 'a', 'n', -1, 0, 0, 0, 0, 0)`)
	require.Error(t, err)
}
