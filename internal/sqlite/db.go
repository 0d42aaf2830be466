package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

const schema = `
-- Storyboard cases, one sequence per workspace
CREATE TABLE IF NOT EXISTS cases (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    workspace_id TEXT NOT NULL,
    case_id TEXT NOT NULL,
    auction_id TEXT NOT NULL,
    nft_id TEXT NOT NULL,
    reserve REAL NOT NULL CHECK(reserve >= 0),
    collateral REAL NOT NULL CHECK(collateral >= 0),
    commit_minutes INTEGER NOT NULL CHECK(commit_minutes >= 0),
    reveal_minutes INTEGER NOT NULL CHECK(reveal_minutes >= 0),
    finalize_minutes INTEGER NOT NULL CHECK(finalize_minutes >= 0),
    bidders INTEGER NOT NULL CHECK(bidders >= 0),
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (workspace_id, case_id)
);
CREATE INDEX IF NOT EXISTS idx_workspace_cases ON cases(workspace_id);

-- Activity log
CREATE TABLE IF NOT EXISTS activity_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    workspace_id TEXT NOT NULL,
    case_id TEXT,
    variant_id TEXT NOT NULL DEFAULT '',
    activity_type TEXT NOT NULL,
    summary TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_workspace_activity ON activity_log(workspace_id);
`

// RunMigrations creates the schema if it does not exist yet
func (db *DB) RunMigrations() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
