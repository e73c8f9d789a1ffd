package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/exportparse/internal/config"
	"github.com/JonMunkholm/exportparse/internal/core"
	"github.com/JonMunkholm/exportparse/internal/logging"
	"github.com/JonMunkholm/exportparse/internal/store"
	"github.com/JonMunkholm/exportparse/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"parse_timeout", cfg.Parse.Timeout,
		"max_file_size", cfg.Parse.MaxFileSize,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Log registered export kinds
	kinds := core.Kinds()
	slog.Info("export kinds registered", "count", len(kinds))
	for _, def := range kinds {
		slog.Debug("export kind", "key", def.Spec.Key, "label", def.Spec.Label)
	}

	service := core.NewService(cfg.Parse.Timeout)
	results := store.New()

	server := web.NewServer(service, results, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
