package catalog

import (
	"fmt"
	"strings"
)

// Store holds the immutable list of auction variants.
type Store struct {
	variants []Variant
	byID     map[string]int
}

// NewStore validates the variants and builds a read-only store.
func NewStore(variants []Variant) (*Store, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: no variants defined", ErrInvalidCatalog)
	}

	s := &Store{
		variants: make([]Variant, 0, len(variants)),
		byID:     make(map[string]int, len(variants)),
	}
	for i, v := range variants {
		if strings.TrimSpace(v.ID) == "" {
			return nil, fmt.Errorf("%w: variant %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := s.byID[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, v.ID)
		}
		if len(v.Focus) == 0 {
			return nil, fmt.Errorf("%w: variant %q has no focus tags", ErrInvalidCatalog, v.ID)
		}
		if len(v.Phases) == 0 {
			return nil, fmt.Errorf("%w: variant %q has no phases", ErrInvalidCatalog, v.ID)
		}
		s.byID[v.ID] = len(s.variants)
		s.variants = append(s.variants, v.clone())
	}
	return s, nil
}

// List returns all variants in catalog-definition order.
func (s *Store) List() []Variant {
	out := make([]Variant, len(s.variants))
	for i, v := range s.variants {
		out[i] = v.clone()
	}
	return out
}

// Find returns the variant with the given id.
func (s *Store) Find(id string) (Variant, error) {
	idx, ok := s.byID[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrVariantNotFound, id)
	}
	return s.variants[idx].clone(), nil
}

// First returns the first catalog entry, the fallback for unknown ids.
func (s *Store) First() Variant {
	return s.variants[0].clone()
}

// Resolve returns the variant for id, or the first entry and false when id is unknown.
func (s *Store) Resolve(id string) (Variant, bool) {
	v, err := s.Find(id)
	if err != nil {
		return s.First(), false
	}
	return v, true
}

// Contains reports whether id names a catalog entry.
func (s *Store) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of variants.
func (s *Store) Len() int {
	return len(s.variants)
}

// At returns the i-th variant. It panics when i is out of range.
func (s *Store) At(i int) Variant {
	return s.variants[i].clone()
}

// Snapshots returns overview cards for at most limit variants.
// A non-positive limit returns all of them.
func (s *Store) Snapshots(limit int) []Snapshot {
	n := len(s.variants)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Snapshot, 0, n)
	for _, v := range s.variants[:n] {
		out = append(out, Snapshot{
			ID:         v.ID,
			Name:       v.Name,
			PhaseCount: len(v.Phases),
			Signature:  v.Signature,
		})
	}
	return out
}
