package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rootline-backend/domain/herbs"
	"rootline-backend/pkg/common"
)

// HerbHandler serves read-only access to the herb knowledge graph
type HerbHandler struct {
	store  *herbs.Store
	logger *zap.Logger
}

// NewHerbHandler creates a new herb handler
func NewHerbHandler(store *herbs.Store, logger *zap.Logger) *HerbHandler {
	return &HerbHandler{
		store:  store,
		logger: logger,
	}
}

// herbListResponse wraps the herb list with its count.
type herbListResponse struct {
	Herbs []herbs.HerbRecord `json:"herbs"`
	Count int                `json:"count"`
}

// graphResponse is the full knowledge graph: every herb plus every edge.
type graphResponse struct {
	Herbs []herbs.HerbRecord `json:"herbs"`
	Edges []herbs.HerbEdge   `json:"edges"`
}

// ListHerbs handles GET /herbs
func (h *HerbHandler) ListHerbs(w http.ResponseWriter, r *http.Request) {
	all := h.store.AllHerbs()
	common.RespondJSON(w, http.StatusOK, herbListResponse{
		Herbs: all,
		Count: len(all),
	})
}

// GetHerb handles GET /herbs/{herbID}
func (h *HerbHandler) GetHerb(w http.ResponseWriter, r *http.Request) {
	herbID := chi.URLParam(r, "herbID")

	record, ok := h.store.ByID(herbID)
	if !ok {
		common.RespondError(w, http.StatusNotFound, common.StandardErrorCodes.NotFound,
			"Herb not found: "+herbID)
		return
	}

	common.RespondJSON(w, http.StatusOK, record)
}

// GetGraph handles GET /herbs/graph
func (h *HerbHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, graphResponse{
		Herbs: h.store.AllHerbs(),
		Edges: h.store.Edges(),
	})
}
