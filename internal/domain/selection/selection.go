package selection

import (
	"log/slog"

	"github.com/rpggio/storyboard/internal/domain/catalog"
)

// State tracks the catalog entry shown in detail view.
type State struct {
	store  *catalog.Store
	active string
	logger *slog.Logger
}

// New creates a selection pointing at the first catalog entry.
func New(store *catalog.Store, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &State{
		store:  store,
		active: store.First().ID,
		logger: logger,
	}
}

// Active returns the currently selected variant.
func (s *State) Active() catalog.Variant {
	v, _ := s.store.Resolve(s.active)
	return v
}

// ActiveID returns the id of the selected variant.
func (s *State) ActiveID() string {
	return s.active
}

// Select makes id the active variant. Unknown ids select the first catalog entry.
func (s *State) Select(id string) catalog.Variant {
	v, ok := s.store.Resolve(id)
	if !ok {
		s.logger.Debug("unknown variant, falling back to first entry", "requested", id, "fallback", v.ID)
	}
	s.active = v.ID
	return v
}
