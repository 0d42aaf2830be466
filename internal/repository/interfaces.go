package repository

import (
	"context"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
)

// CaseRepository manages storyboard case storage
type CaseRepository interface {
	InsertFront(ctx context.Context, workspaceID string, c storyboard.Case) error
	All(ctx context.Context, workspaceID string) ([]storyboard.Case, error)
	Count(ctx context.Context, workspaceID string) (int, error)
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// ActivityRepository manages activity log storage
type ActivityRepository interface {
	Log(ctx context.Context, workspaceID string, entry *activity.ActivityEntry) error
	List(ctx context.Context, workspaceID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

var (
	_ storyboard.Repository = CaseRepository(nil)
	_ activity.Repository   = ActivityRepository(nil)
)
