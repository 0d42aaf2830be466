package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/rpggio/storyboard/internal/repository"
)

// CaseRepository implements repository.CaseRepository for SQLite
type CaseRepository struct {
	db *DB
}

// NewCaseRepository creates a new CaseRepository
func NewCaseRepository(db *DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// InsertFront stores a case as the newest in its workspace
func (r *CaseRepository) InsertFront(ctx context.Context, workspaceID string, c storyboard.Case) error {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO cases (
			workspace_id, case_id, auction_id, nft_id, reserve, collateral,
			commit_minutes, reveal_minutes, finalize_minutes, bidders, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		workspaceID,
		c.ID,
		c.AuctionID,
		c.NFTID,
		c.Reserve,
		c.Collateral,
		c.Commit,
		c.Reveal,
		c.Finalize,
		c.Bidders,
		c.Notes,
		createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("case %s: %w", c.ID, repository.ErrDuplicateCase)
		}
		return fmt.Errorf("failed to insert case: %w", err)
	}

	return nil
}

// All returns the workspace's cases, most recent first
func (r *CaseRepository) All(ctx context.Context, workspaceID string) ([]storyboard.Case, error) {
	query := `
		SELECT
			case_id, auction_id, nft_id, reserve, collateral,
			commit_minutes, reveal_minutes, finalize_minutes, bidders, notes, created_at
		FROM cases
		WHERE workspace_id = ?
		ORDER BY seq DESC
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	cases := []storyboard.Case{}
	for rows.Next() {
		var c storyboard.Case
		if err := rows.Scan(
			&c.ID,
			&c.AuctionID,
			&c.NFTID,
			&c.Reserve,
			&c.Collateral,
			&c.Commit,
			&c.Reveal,
			&c.Finalize,
			&c.Bidders,
			&c.Notes,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case rows: %w", err)
	}

	return cases, nil
}

// Count returns how many cases the workspace holds
func (r *CaseRepository) Count(ctx context.Context, workspaceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases WHERE workspace_id = ?`, workspaceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count cases: %w", err)
	}
	return n, nil
}

// DeleteWorkspace removes every case of the workspace
func (r *CaseRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE workspace_id = ?`, workspaceID); err != nil {
		return fmt.Errorf("failed to delete cases: %w", err)
	}
	return nil
}
