package herbs

import "fmt"

// Store exposes read-only access to the compiled-in herb and edge tables.
// It is constructed once at startup and is safe for concurrent reads; there
// is no mutation path, so no locking is needed.
type Store struct {
	herbs []HerbRecord
	edges []HerbEdge
	byID  map[string]*HerbRecord
}

// NewStore builds a Store over the compiled-in catalog, verifying that the
// edge and pairing tables only reference herbs that exist. A failure here is
// a corrupt table, not a runtime condition.
func NewStore() (*Store, error) {
	return newStore(catalog, edgeTable)
}

func newStore(records []HerbRecord, edges []HerbEdge) (*Store, error) {
	byID := make(map[string]*HerbRecord, len(records))
	for i := range records {
		h := &records[i]
		if h.ID == "" {
			return nil, fmt.Errorf("herb table entry %d has an empty ID", i)
		}
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate herb ID %q", h.ID)
		}
		byID[h.ID] = h
	}

	for i := range records {
		for _, p := range records[i].Pairings {
			if _, ok := byID[p]; !ok {
				return nil, fmt.Errorf("herb %q pairs with unknown herb %q", records[i].ID, p)
			}
		}
	}
	for _, e := range edges {
		if _, ok := byID[e.From]; !ok {
			return nil, fmt.Errorf("edge %q-%q references unknown herb %q", e.From, e.To, e.From)
		}
		if _, ok := byID[e.To]; !ok {
			return nil, fmt.Errorf("edge %q-%q references unknown herb %q", e.From, e.To, e.To)
		}
	}

	return &Store{herbs: records, edges: edges, byID: byID}, nil
}

// AllHerbs returns the full herb table in declaration order. The returned
// slice is shared and must be treated as read-only.
func (s *Store) AllHerbs() []HerbRecord {
	return s.herbs
}

// Edges returns the full edge table in declaration order. The returned
// slice is shared and must be treated as read-only.
func (s *Store) Edges() []HerbEdge {
	return s.edges
}

// ByID looks up a single herb. The second return value reports whether the
// ID exists.
func (s *Store) ByID(id string) (*HerbRecord, bool) {
	h, ok := s.byID[id]
	return h, ok
}

// Len returns the number of herbs in the table.
func (s *Store) Len() int {
	return len(s.herbs)
}
