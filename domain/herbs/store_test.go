package herbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CatalogIntegrity(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	assert.Equal(t, len(catalog), store.Len())
	assert.NotEmpty(t, store.Edges())

	for _, h := range store.AllHerbs() {
		assert.NotEmpty(t, h.ID)
		assert.NotEmpty(t, h.Name)
		assert.NotEmpty(t, h.ScientificName)
		assert.NotEmpty(t, h.Traditions, "herb %s has no tradition", h.ID)
		assert.NotEmpty(t, h.Actions, "herb %s has no actions", h.ID)
		assert.NotEmpty(t, h.Uses, "herb %s has no uses", h.ID)
	}
}

func TestNewStore_DeclarationOrderPreserved(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for i, h := range store.AllHerbs() {
		assert.Equal(t, catalog[i].ID, h.ID)
	}
	for i, e := range store.Edges() {
		assert.Equal(t, edgeTable[i].From, e.From)
		assert.Equal(t, edgeTable[i].To, e.To)
	}
}

func TestStore_ByID(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	h, ok := store.ByID("ashwagandha")
	require.True(t, ok)
	assert.Equal(t, "Ashwagandha", h.Name)
	assert.Contains(t, h.Traditions, TraditionAyurvedic)

	_, ok = store.ByID("unknown-herb")
	assert.False(t, ok)
}

func TestNewStore_RejectsCorruptTables(t *testing.T) {
	valid := []HerbRecord{
		{ID: "a", Name: "A", Traditions: []Tradition{TraditionTCM}},
		{ID: "b", Name: "B", Traditions: []Tradition{TraditionTCM}},
	}

	tests := []struct {
		name    string
		records []HerbRecord
		edges   []HerbEdge
	}{
		{
			name:    "empty herb ID",
			records: []HerbRecord{{ID: "", Name: "Nameless"}},
		},
		{
			name: "duplicate herb ID",
			records: []HerbRecord{
				{ID: "dup", Name: "First"},
				{ID: "dup", Name: "Second"},
			},
		},
		{
			name: "pairing references unknown herb",
			records: []HerbRecord{
				{ID: "a", Name: "A", Pairings: []string{"ghost"}},
			},
		},
		{
			name:    "edge references unknown herb",
			records: valid,
			edges:   []HerbEdge{{From: "a", To: "ghost", Label: "broken"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newStore(tt.records, tt.edges)
			assert.Error(t, err)
		})
	}
}

func TestHerbRecord_InAnyTradition(t *testing.T) {
	h := HerbRecord{ID: "x", Traditions: []Tradition{TraditionAyurvedic}}

	assert.True(t, h.InAnyTradition(nil), "empty selection selects everything")
	assert.True(t, h.InAnyTradition([]Tradition{TraditionAyurvedic}))
	assert.True(t, h.InAnyTradition([]Tradition{TraditionTCM, TraditionAyurvedic}))
	assert.False(t, h.InAnyTradition([]Tradition{TraditionTCM}))
}

func TestHerbEdge_Connects(t *testing.T) {
	e := HerbEdge{From: "goji", To: "chrysanthemum", Label: "classic bright-eyes tea pair"}

	assert.True(t, e.Connects("goji", "chrysanthemum"))
	assert.True(t, e.Connects("chrysanthemum", "goji"))
	assert.False(t, e.Connects("goji", "reishi"))
}

func TestParseTradition(t *testing.T) {
	for _, tr := range AllTraditions {
		parsed, err := ParseTradition(string(tr))
		require.NoError(t, err)
		assert.Equal(t, tr, parsed)
		assert.NotEmpty(t, tr.DisplayName())
	}

	_, err := ParseTradition("western")
	assert.Error(t, err)
}
