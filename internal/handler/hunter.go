package handler

import (
	"net/http"

	"github.com/forgo/ascend/api/internal/middleware"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/service"
)

// HunterHandler serves the authenticated hunter's own profile
type HunterHandler struct {
	svc *service.HunterService
}

// NewHunterHandler creates a new hunter handler
func NewHunterHandler(svc *service.HunterService) *HunterHandler {
	return &HunterHandler{svc: svc}
}

// UpgradeStatRequest is the body of POST /v1/user/upgrade-stat.
// Points defaults to 1 when omitted.
type UpgradeStatRequest struct {
	StatName string `json:"stat_name" validate:"required,oneof=strength endurance agility vitality"`
	Points   *int   `json:"points" validate:"omitempty,min=1"`
}

// Profile handles GET /v1/user/profile
func (h *HunterHandler) Profile(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	profile, err := h.svc.Profile(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, profile, map[string]string{
		"self":  "/v1/user/profile",
		"stats": "/v1/user/stats",
	})
}

// Stats handles GET /v1/user/stats
func (h *HunterHandler) Stats(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.Stats(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, stats, nil)
}

// UpgradeStat handles POST /v1/user/upgrade-stat
func (h *HunterHandler) UpgradeStat(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	var req UpgradeStatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	points := 1
	if req.Points != nil {
		points = *req.Points
	}

	result, err := h.svc.UpgradeStat(r.Context(), hunterID, model.StatName(req.StatName), points)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, result, nil)
}

// requireHunter returns the authenticated hunter id, writing a 401 when the
// request carries none.
func requireHunter(w http.ResponseWriter, r *http.Request) (string, bool) {
	hunterID := middleware.GetHunterID(r.Context())
	if hunterID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return "", false
	}
	return hunterID, true
}
