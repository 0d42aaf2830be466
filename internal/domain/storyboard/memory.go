package storyboard

import (
	"context"
	"sync"
)

// MemoryRepository keeps cases in process memory for the life of the process.
type MemoryRepository struct {
	mu    sync.Mutex
	cases map[string][]Case
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cases: make(map[string][]Case)}
}

// InsertFront prepends c to the workspace's cases.
func (r *MemoryRepository) InsertFront(_ context.Context, workspaceID string, c Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.cases[workspaceID]
	next := make([]Case, 0, len(existing)+1)
	next = append(next, c)
	r.cases[workspaceID] = append(next, existing...)
	return nil
}

// All returns the workspace's cases, most recent first.
func (r *MemoryRepository) All(_ context.Context, workspaceID string) ([]Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Case(nil), r.cases[workspaceID]...), nil
}

// Count returns how many cases the workspace holds.
func (r *MemoryRepository) Count(_ context.Context, workspaceID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.cases[workspaceID]), nil
}

// DeleteWorkspace drops every case of the workspace.
func (r *MemoryRepository) DeleteWorkspace(_ context.Context, workspaceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cases, workspaceID)
	return nil
}
