package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rootline-backend/infrastructure/config"
	"rootline-backend/infrastructure/di"
	"rootline-backend/infrastructure/prompts"
	"rootline-backend/interfaces/http/rest"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Optional hot-reloaded prompt overrides
	if cfg.PromptOverridesDir != "" {
		watcher, err := prompts.NewWatcher(cfg.PromptOverridesDir, container.Prompts, container.Logger)
		if err != nil {
			container.Logger.Fatal("Failed to set up prompt overrides", zap.Error(err))
		}
		watcher.Start()
		defer watcher.Stop()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Config:        cfg,
		Logger:        container.Logger,
		Metrics:       container.Metrics,
		Registry:      container.Registry,
		IntakeHandler: container.IntakeHandler,
		HerbHandler:   container.HerbHandler,
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		container.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.Int("herbs", container.Store.Len()),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	container.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := container.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}
