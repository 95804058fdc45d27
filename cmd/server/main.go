package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/ascend/api/internal/catalog"
	"github.com/forgo/ascend/api/internal/config"
	"github.com/forgo/ascend/api/internal/database"
	"github.com/forgo/ascend/api/internal/handler"
	"github.com/forgo/ascend/api/internal/metrics"
	"github.com/forgo/ascend/api/internal/middleware"
	"github.com/forgo/ascend/api/internal/repository"
	"github.com/forgo/ascend/api/internal/service"
	"github.com/forgo/ascend/api/migrations"
	"github.com/forgo/ascend/api/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := database.ApplyMigrations(ctx, db, migrations.FS); err != nil {
		slog.Error("failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:          cfg.JWT.Secret,
		Issuer:          cfg.JWT.Issuer,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.JWT.Secret == config.DefaultJWTSecret {
		slog.Warn("using the default JWT secret; set JWT_SECRET outside development")
	}

	// Metrics double as the services' event recorder
	var events service.EventRecorder
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
		events = collector
	}

	// Initialize repositories
	hunterRepo := repository.NewHunterRepository(db)
	dailyRepo := repository.NewDailyQuestRepository(db)
	guildRepo := repository.NewGuildRepository(db)

	// Initialize services
	cat := catalog.Default()
	locks := service.NewHunterLocks()

	authService := service.NewAuthService(service.AuthServiceConfig{
		HunterRepo: hunterRepo,
		Tokens:     jwtService,
		Events:     events,
	})
	hunterService := service.NewHunterService(service.HunterServiceConfig{
		HunterRepo: hunterRepo,
		Catalog:    cat,
		Locks:      locks,
		Events:     events,
	})
	questService := service.NewQuestService(service.QuestServiceConfig{
		HunterRepo: hunterRepo,
		DailyRepo:  dailyRepo,
		Catalog:    cat,
		Locks:      locks,
		Events:     events,
	})
	shopService := service.NewShopService(service.ShopServiceConfig{
		HunterRepo: hunterRepo,
		Catalog:    cat,
		Locks:      locks,
		Events:     events,
	})
	guildService := service.NewGuildService(service.GuildServiceConfig{
		GuildRepo:  guildRepo,
		HunterRepo: hunterRepo,
		Catalog:    cat,
		Locks:      locks,
		Events:     events,
	})

	// Initialize handlers
	routes := &handler.Routes{
		Health:     handler.NewHealthHandler(db),
		Auth:       handler.NewAuthHandler(authService),
		Hunter:     handler.NewHunterHandler(hunterService),
		Quest:      handler.NewQuestHandler(questService),
		Shop:       handler.NewShopHandler(shopService),
		Collection: handler.NewCollectionHandler(service.NewCollectionService(hunterRepo, cat)),
		Guild:      handler.NewGuildHandler(guildService),
		Ranking:    handler.NewRankingHandler(service.NewRankingService(hunterRepo, guildRepo)),
	}
	if collector != nil {
		routes.Metrics = collector.Handler()
	}

	// Initialize rate limiters
	var globalLimit, authLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Cleanup:           cfg.RateLimit.CleanupInterval,
		})
		defer rateLimiter.Stop()
		authLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.AuthPerMinute,
			Cleanup:           cfg.RateLimit.CleanupInterval,
		})
		defer authLimiter.Stop()

		globalLimit = middleware.RateLimit(rateLimiter)
		authLimit = middleware.RateLimit(authLimiter)
	}

	// Setup router
	mux := http.NewServeMux()
	routes.RegisterRoutes(mux, middleware.Auth(jwtService), authLimit)

	// Apply global middleware
	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
	}
	if collector != nil {
		chain = append(chain, collector.InstrumentHandler)
	}
	chain = append(chain,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.MaxBodySize(middleware.DefaultMaxBodyBytes),
	)
	if globalLimit != nil {
		chain = append(chain, globalLimit)
	}
	chain = append(chain, middleware.Compress)
	wrapped := middleware.Chain(mux, chain...)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
