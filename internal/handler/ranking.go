package handler

import (
	"net/http"

	"github.com/forgo/ascend/api/internal/service"
)

// RankingHandler serves the public leaderboards
type RankingHandler struct {
	svc *service.RankingService
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(svc *service.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// Hunters handles GET /v1/ranking
func (h *RankingHandler) Hunters(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Hunters(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, entries, nil)
}

// Guilds handles GET /v1/ranking/guilds
func (h *RankingHandler) Guilds(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Guilds(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, entries, nil)
}
