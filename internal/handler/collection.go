package handler

import (
	"net/http"

	"github.com/forgo/ascend/api/internal/service"
)

// CollectionHandler lists the hunter's shadows and achievements
type CollectionHandler struct {
	svc *service.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(svc *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// Shadows handles GET /v1/shadows
func (h *CollectionHandler) Shadows(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	shadows, err := h.svc.Shadows(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, shadows, nil)
}

// Achievements handles GET /v1/achievements
func (h *CollectionHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	achievements, err := h.svc.Achievements(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, achievements, nil)
}
