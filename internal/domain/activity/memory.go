package activity

import (
	"context"
	"sync"
)

// MemoryRepository keeps activity in process memory.
type MemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	entries map[string][]ActivityEntry
}

// NewMemoryRepository creates an empty in-memory activity log.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string][]ActivityEntry)}
}

// Log appends entry to the workspace log and assigns its id.
func (r *MemoryRepository) Log(_ context.Context, workspaceID string, entry *ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	entry.WorkspaceID = workspaceID
	r.entries[workspaceID] = append(r.entries[workspaceID], *entry)
	return nil
}

// List returns matching entries, newest first.
func (r *MemoryRepository) List(_ context.Context, workspaceID string, opts ListActivityOptions) ([]ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.entries[workspaceID]
	out := make([]ActivityEntry, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- {
		e := log[i]
		if opts.ActivityType != nil && e.ActivityType != *opts.ActivityType {
			continue
		}
		if opts.CaseID != nil && (e.CaseID == nil || *e.CaseID != *opts.CaseID) {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

// DeleteWorkspace drops the workspace's log.
func (r *MemoryRepository) DeleteWorkspace(_ context.Context, workspaceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, workspaceID)
	return nil
}
