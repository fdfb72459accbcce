package herbs

// HerbRecord is one entry in the compiled-in herb table. Records are
// constructed once at startup and never mutated; every slice field keeps
// its declaration order.
type HerbRecord struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	ScientificName string      `json:"scientificName"`
	Traditions     []Tradition `json:"traditions"`
	Energetics     []string    `json:"energetics"`
	Actions        []string    `json:"actions"`
	Uses           []string    `json:"uses"`
	Cautions       []string    `json:"cautions"`
	Pairings       []string    `json:"pairings"`
}

// InTradition reports whether the herb belongs to the given tradition.
func (h *HerbRecord) InTradition(t Tradition) bool {
	for _, ht := range h.Traditions {
		if ht == t {
			return true
		}
	}
	return false
}

// InAnyTradition reports whether the herb's tradition set intersects the
// selection. An empty selection means every tradition is selected.
func (h *HerbRecord) InAnyTradition(selected []Tradition) bool {
	if len(selected) == 0 {
		return true
	}
	for _, t := range selected {
		if h.InTradition(t) {
			return true
		}
	}
	return false
}

// HerbEdge is a labeled relationship between two herbs. The pair is
// unordered: From/To only reflect declaration order in the edge table.
type HerbEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// Connects reports whether the edge touches both of the given herb IDs,
// in either direction.
func (e HerbEdge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}
