package storyboard

import (
	"context"

	"github.com/rpggio/storyboard/internal/domain/activity"
)

// Repository stores generated cases per workspace, newest first.
type Repository interface {
	InsertFront(ctx context.Context, workspaceID string, c Case) error
	All(ctx context.Context, workspaceID string) ([]Case, error)
	Count(ctx context.Context, workspaceID string) (int, error)
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// ActivityLogger records storyboard events.
type ActivityLogger interface {
	LogActivity(ctx context.Context, workspaceID string, entry *activity.ActivityEntry) error
}
