package handler

import (
	"net/http"

	"github.com/forgo/ascend/api/internal/middleware"
)

// Routes groups the handlers mounted by the server
type Routes struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Hunter     *HunterHandler
	Quest      *QuestHandler
	Shop       *ShopHandler
	Collection *CollectionHandler
	Guild      *GuildHandler
	Ranking    *RankingHandler
	// Metrics serves GET /metrics when set
	Metrics http.Handler
}

// RegisterRoutes mounts every endpoint on mux. authenticate guards the
// hunter-scoped routes; authLimit, when non-nil, wraps register and login.
func (rt *Routes) RegisterRoutes(mux *http.ServeMux, authenticate, authLimit middleware.Middleware) {
	protect := func(h http.HandlerFunc) http.Handler {
		return authenticate(h)
	}
	limited := func(h http.HandlerFunc) http.Handler {
		if authLimit == nil {
			return h
		}
		return authLimit(h)
	}

	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}
	mux.HandleFunc("GET /v1/{$}", rt.Health.Root)

	// Auth endpoints (public)
	mux.Handle("POST /v1/auth/register", limited(rt.Auth.Register))
	mux.Handle("POST /v1/auth/login", limited(rt.Auth.Login))

	// Hunter endpoints
	mux.Handle("GET /v1/user/profile", protect(rt.Hunter.Profile))
	mux.Handle("GET /v1/user/stats", protect(rt.Hunter.Stats))
	mux.Handle("POST /v1/user/upgrade-stat", protect(rt.Hunter.UpgradeStat))

	// Quest endpoints
	mux.Handle("GET /v1/quests/daily", protect(rt.Quest.Daily))
	mux.Handle("GET /v1/quests/special", protect(rt.Quest.Special))
	mux.Handle("GET /v1/quests/weekly-boss", protect(rt.Quest.WeeklyBoss))
	mux.Handle("GET /v1/quests/special-missions", protect(rt.Quest.SpecialMissions))
	mux.Handle("GET /v1/quests/punishment", protect(rt.Quest.Punishment))
	mux.Handle("POST /v1/quests/start-training", protect(rt.Quest.StartTraining))
	mux.Handle("POST /v1/quests/complete", protect(rt.Quest.Complete))
	mux.Handle("POST /v1/quests/fail", protect(rt.Quest.Fail))

	// Shop endpoints
	mux.Handle("GET /v1/shop/items", protect(rt.Shop.Items))
	mux.Handle("POST /v1/shop/buy", protect(rt.Shop.Buy))

	// Collection endpoints
	mux.Handle("GET /v1/shadows", protect(rt.Collection.Shadows))
	mux.Handle("GET /v1/achievements", protect(rt.Collection.Achievements))

	// Guild endpoints
	mux.HandleFunc("GET /v1/guilds", rt.Guild.List)
	mux.HandleFunc("GET /v1/guilds/{guildId}", rt.Guild.Get)
	mux.Handle("POST /v1/guilds/create", protect(rt.Guild.Create))
	mux.Handle("POST /v1/guilds/join", protect(rt.Guild.Join))
	mux.Handle("POST /v1/guilds/leave", protect(rt.Guild.Leave))

	// Ranking endpoints (public)
	mux.HandleFunc("GET /v1/ranking", rt.Ranking.Hunters)
	mux.HandleFunc("GET /v1/ranking/guilds", rt.Ranking.Guilds)
}
