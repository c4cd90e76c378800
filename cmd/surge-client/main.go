package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/surgeprotocol/surge-client/internal/config"
	"github.com/surgeprotocol/surge-client/internal/connection"
	"github.com/surgeprotocol/surge-client/internal/session"
	"github.com/surgeprotocol/surge-client/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	envFile := flag.String("env-file", ".env", "path to env file (optional)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting surge client",
		"version", version.Version,
		"commit", version.Commit,
	)

	// A missing env file is fine; the environment and defaults cover it.
	if err := godotenv.Load(*envFile); err == nil {
		logger.Info("loaded environment file", "path", *envFile)
	}

	// Resolve configuration: file, then SERVER_HOST/SERVER_PORT, then defaults
	cfg, err := config.Resolve(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"server", cfg.Server.Address(),
		"dial_timeout", cfg.Client.DialTimeout,
		"retry_delay", cfg.Client.RetryDelay,
		"chunk_size", cfg.Client.ChunkSize,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	dialer := connection.NewDialer(connection.DialerConfig{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		DialTimeout: cfg.Client.DialTimeout,
		RetryDelay:  cfg.Client.RetryDelay,
	}, logger)

	receiver := connection.NewReceiver(connection.ReceiverConfig{
		ChunkSize:   cfg.Client.ChunkSize,
		ReadTimeout: cfg.Client.ReadTimeout,
	}, logger, os.Stdout)

	sess := session.New(dialer, receiver, logger)

	// Optional health server
	var healthServer *http.Server
	if cfg.Health.Port > 0 {
		healthServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Health.Port),
			Handler: createHealthHandler(cfg.Health.Path, sess, dialer),
		}
		go func() {
			logger.Info("starting health server", "port", cfg.Health.Port)
			if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
				logger.Error("health server error", "error", err)
			}
		}()
	}

	// Run the session loop until a shutdown signal cancels it
	if err := sess.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("session loop ended", "error", err)
	}

	logger.Info("shutting down...")

	if healthServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		healthServer.Shutdown(shutdownCtx)
	}

	logger.Info("surge client stopped")
}

// createHealthHandler creates the HTTP handler for health checks.
func createHealthHandler(path string, sess *session.Session, dialer *connection.Dialer) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		stats := sess.Stats()

		health := struct {
			Status    string `json:"status"`
			Connected bool   `json:"connected"`
			Sessions  int64  `json:"sessions"`
			Attempts  int64  `json:"attempts"`
			Server    string `json:"server"`
		}{
			Status:    "connected",
			Connected: stats.Connected,
			Sessions:  stats.Sessions,
			Attempts:  dialer.Attempts(),
			Server:    dialer.Address(),
		}
		w.Header().Set("Content-Type", "application/json")
		if !stats.Connected {
			health.Status = "reconnecting"
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
