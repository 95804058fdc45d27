package handler

import (
	"net/http"

	"github.com/forgo/ascend/api/internal/service"
)

// QuestHandler handles quest listing and the quest lifecycle
type QuestHandler struct {
	svc *service.QuestService
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(svc *service.QuestService) *QuestHandler {
	return &QuestHandler{svc: svc}
}

// QuestActionRequest is the body of the start-training, complete and fail
// endpoints
type QuestActionRequest struct {
	QuestID string `json:"quest_id" validate:"required"`
}

// Daily handles GET /v1/quests/daily
func (h *QuestHandler) Daily(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	quest, err := h.svc.Daily(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, quest, map[string]string{
		"complete": "/v1/quests/complete",
		"fail":     "/v1/quests/fail",
	})
}

// Special handles GET /v1/quests/special
func (h *QuestHandler) Special(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	offers, err := h.svc.SpecialQuests(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, offers, nil)
}

// WeeklyBoss handles GET /v1/quests/weekly-boss
func (h *QuestHandler) WeeklyBoss(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	offers, err := h.svc.WeeklyBosses(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, offers, nil)
}

// SpecialMissions handles GET /v1/quests/special-missions
func (h *QuestHandler) SpecialMissions(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	offers, err := h.svc.SpecialMissions(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, offers, nil)
}

// Punishment handles GET /v1/quests/punishment
func (h *QuestHandler) Punishment(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	quests, err := h.svc.Punishments(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, quests, nil)
}

// StartTraining handles POST /v1/quests/start-training
func (h *QuestHandler) StartTraining(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	var req QuestActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	started, err := h.svc.StartTraining(r.Context(), hunterID, req.QuestID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, started, nil)
}

// Complete handles POST /v1/quests/complete
func (h *QuestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	var req QuestActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.Complete(r.Context(), hunterID, req.QuestID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"profile": "/v1/user/profile",
	})
}

// Fail handles POST /v1/quests/fail
func (h *QuestHandler) Fail(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	var req QuestActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.Fail(r.Context(), hunterID, req.QuestID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"punishment": "/v1/quests/punishment",
	})
}
