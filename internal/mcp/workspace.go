package mcp

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/selection"
)

// Workspace is the per-session state: a partition of the case repository
// and the active catalog selection. Actions on one workspace run one at a time.
type Workspace struct {
	ID        string
	Selection *selection.State

	mu sync.Mutex
}

// Lock serializes actions on the workspace.
func (w *Workspace) Lock() { w.mu.Lock() }

// Unlock releases the workspace.
func (w *Workspace) Unlock() { w.mu.Unlock() }

// Workspaces maps MCP session ids to workspaces, creating them on first use.
type Workspaces struct {
	store  *catalog.Store
	logger *slog.Logger

	mu        sync.Mutex
	bySession map[string]*Workspace
}

// NewWorkspaces creates an empty registry.
func NewWorkspaces(store *catalog.Store, logger *slog.Logger) *Workspaces {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workspaces{
		store:     store,
		logger:    logger,
		bySession: make(map[string]*Workspace),
	}
}

// ForSession returns the workspace of sessionID. Session-less transports
// such as stdio share the workspace keyed by the empty id.
func (w *Workspaces) ForSession(sessionID string) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ws, ok := w.bySession[sessionID]; ok {
		return ws
	}
	ws := &Workspace{
		ID:        uuid.NewString(),
		Selection: selection.New(w.store, w.logger),
	}
	w.bySession[sessionID] = ws
	w.logger.Debug("workspace created", "workspace_id", ws.ID, "session_id", sessionID)
	return ws
}

// Forget removes the workspace of sessionID and returns it, or nil if there was none.
func (w *Workspaces) Forget(sessionID string) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.bySession[sessionID]
	if !ok {
		return nil
	}
	delete(w.bySession, sessionID)
	return ws
}

// Len returns the number of live workspaces.
func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bySession)
}
