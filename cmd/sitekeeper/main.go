// SiteKeeper master server — accepts agent connections, runs workflow
// operations across the fleet and persists the per-action journal.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sitekeeper/sitekeeper/pkg/api"
	"github.com/sitekeeper/sitekeeper/pkg/auth"
	"github.com/sitekeeper/sitekeeper/pkg/cleanup"
	"github.com/sitekeeper/sitekeeper/pkg/config"
	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/database"
	"github.com/sitekeeper/sitekeeper/pkg/hub"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
	"github.com/sitekeeper/sitekeeper/pkg/workflow"
	"github.com/sitekeeper/sitekeeper/pkg/workflow/handlers"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	httpPort := getEnv("HTTP_PORT", strconv.Itoa(cfg.AgentPort))
	slog.Info("Starting SiteKeeper master",
		"http_port", httpPort,
		"environment", cfg.EnvironmentName,
		"config_dir", *configDir)

	// 2. Initialize journal database
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	journalStore := journal.NewEntStore(dbClient.Client)
	journalSvc := journal.NewService(journalStore, cfg.JournalRootPath, cfg.EnvironmentName)

	cleanupSvc := cleanup.NewService(cfg.Retention, journalStore)
	cleanupSvc.Start(ctx)

	// 3. Agent registry with background heartbeat sweeper
	agentRegistry := registry.New(cfg.OfflineThreshold())
	registryCtx, registryCancel := context.WithCancel(ctx)
	defer registryCancel()
	agentRegistry.Start(registryCtx)

	// 4. Log router and node-action coordinator
	router := logrouter.New(journalSvc, agentRegistry, cfg.FlushTimeout())
	coord := coordinator.New(agentRegistry, router, journalSvc, coordinator.Timeouts{
		Readiness:         cfg.ReadinessTimeout(),
		CancellationGrace: cfg.CancellationGrace(),
	})
	go coord.Run(registryCtx, agentRegistry.Events())
	slog.Info("Coordinator started",
		"readiness_timeout", cfg.ReadinessTimeout(),
		"cancellation_grace", cfg.CancellationGrace())

	// 5. Workflow handlers and runtime
	handlerRegistry := workflow.NewHandlerRegistry()
	handlers.Register(handlerRegistry)
	runtime := workflow.NewRuntime(handlerRegistry, coord, router, journalSvc, agentRegistry)
	slog.Info("Workflow runtime initialized", "operation_types", handlerRegistry.Types())

	// 6. Agent hub with JWT auth
	authSvc := auth.NewService(
		cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Secret,
		cfg.AccessTokenTTL(), cfg.RefreshTokenTTL(),
	)
	agentHub := hub.New(agentRegistry, coord, router, authSvc, cfg.EnvironmentName)

	// 7. Create HTTP server
	httpServer := api.NewServer(cfg, dbClient, runtime, handlerRegistry, agentRegistry, agentHub)

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("SiteKeeper master started successfully",
		"environment", cfg.EnvironmentName)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown. Stop accepting HTTP and agent traffic first,
	// then give running workflows a bounded window to finish.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	runtimeDone := make(chan struct{})
	go func() {
		runtime.Wait()
		coord.Wait()
		close(runtimeDone)
	}()

	select {
	case <-runtimeDone:
		slog.Info("Workflow runtime stopped gracefully")
	case <-time.After(30 * time.Second):
		slog.Warn("Workflow shutdown timeout exceeded, running operations abandoned")
	}

	cleanupSvc.Stop()
	registryCancel()
	agentRegistry.Stop()

	slog.Info("Shutdown complete")
}
