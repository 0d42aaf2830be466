package activity

import "context"

// Repository provides persistence operations for activity entries.
type Repository interface {
	Log(ctx context.Context, workspaceID string, entry *ActivityEntry) error
	List(ctx context.Context, workspaceID string, opts ListActivityOptions) ([]ActivityEntry, error)
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}
