package handler

import (
	"net/http"

	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/service"
)

// GuildHandler handles guild HTTP requests
type GuildHandler struct {
	svc *service.GuildService
}

// NewGuildHandler creates a new guild handler
func NewGuildHandler(svc *service.GuildService) *GuildHandler {
	return &GuildHandler{svc: svc}
}

// CreateGuildRequest is the body of POST /v1/guilds/create. Length rules are
// enforced by the service.
type CreateGuildRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// JoinGuildRequest is the body of POST /v1/guilds/join
type JoinGuildRequest struct {
	GuildID string `json:"guild_id" validate:"required"`
}

// List handles GET /v1/guilds - list all guilds
func (h *GuildHandler) List(w http.ResponseWriter, r *http.Request) {
	guilds, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, guilds, nil)
}

// Get handles GET /v1/guilds/{guildId} - guild details with members
func (h *GuildHandler) Get(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("guildId")
	if guildID == "" {
		WriteError(w, model.NewBadRequestError("guild ID required"))
		return
	}

	details, err := h.svc.Get(r.Context(), guildID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, details, map[string]string{
		"self": "/v1/guilds/" + guildID,
	})
}

// Create handles POST /v1/guilds/create - found a guild
func (h *GuildHandler) Create(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	var req CreateGuildRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.Create(r.Context(), hunterID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusCreated, result, map[string]string{
		"self": "/v1/guilds/" + result.Guild.ID,
	})
}

// Join handles POST /v1/guilds/join
func (h *GuildHandler) Join(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	var req JoinGuildRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.Join(r.Context(), hunterID, req.GuildID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"self": "/v1/guilds/" + result.Guild.ID,
	})
}

// Leave handles POST /v1/guilds/leave
func (h *GuildHandler) Leave(w http.ResponseWriter, r *http.Request) {
	hunterID, ok := requireHunter(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Leave(r.Context(), hunterID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, result, nil)
}
