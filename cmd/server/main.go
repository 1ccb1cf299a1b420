package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docstyler/internal/api"
	"github.com/dgallion1/docstyler/internal/config"
	"github.com/dgallion1/docstyler/internal/pipeline"
	"github.com/dgallion1/docstyler/internal/stats"
	"github.com/dgallion1/docstyler/internal/styles"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the rule table: built-in defaults, or an operator override.
	baseRules := styles.Default()
	if cfg.StyleMapPath != "" {
		var err error
		baseRules, err = styles.LoadFile(cfg.StyleMapPath)
		if err != nil {
			log.Error("failed to load style map", "path", cfg.StyleMapPath, "error", err)
			os.Exit(1)
		}
		log.Info("loaded style map", "path", cfg.StyleMapPath, "styles", len(baseRules))
	}

	st := stats.NewFormatStats(cfg.StatsWindow)

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, st, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, baseRules, st, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docstyler", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
