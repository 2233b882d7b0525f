// Package main is the entry point for the SiteForge API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siteforge/internal/cache"
	"siteforge/internal/config"
	"siteforge/internal/database"
	"siteforge/internal/handlers"
	"siteforge/internal/router"
	"siteforge/internal/service"
	"siteforge/internal/session"
	"siteforge/internal/storage"
	"siteforge/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey, which backs the session store.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies Secure.
	sessionStore := session.NewStore(valkeyClient, !cfg.IsDev())

	// Connect to S3-compatible object storage (optional — the API works
	// without it, with uploads disabled and no URLs resolved).
	storageClient, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
	if err != nil {
		slog.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("object storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("object storage not configured — media uploads disabled")
	}

	// Stores, services, handler groups.
	userStore := store.NewUserStore(db)
	websiteStore := store.NewWebsiteStore(db)
	pageStore := store.NewPageStore(db)
	componentStore := store.NewComponentStore(db)
	mediaStore := store.NewMediaStore(db)

	websiteService := service.NewWebsiteService(websiteStore, pageStore, storageClient, cfg.PresignExpiry)
	pageService := service.NewPageService(websiteStore, pageStore)
	componentService := service.NewComponentService(componentStore, storageClient, cfg.PresignExpiry)
	mediaService := service.NewMediaService(mediaStore, websiteStore, storageClient, cfg.PresignExpiry)

	r := router.New(sessionStore, router.Handlers{
		Auth:       handlers.NewAuth(sessionStore, userStore),
		Websites:   handlers.NewWebsites(websiteService),
		Pages:      handlers.NewPages(pageService),
		Components: handlers.NewComponents(componentService),
		Media:      handlers.NewMedia(mediaService),
	})

	// Create the HTTP server with sensible timeouts. ReadTimeout must
	// accommodate 50 MB media uploads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
