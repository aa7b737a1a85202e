package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucasmn/newsdesk/app/agents"
	"github.com/lucasmn/newsdesk/app/api"
	"github.com/lucasmn/newsdesk/app/cfg"
	"github.com/lucasmn/newsdesk/app/database"
	"github.com/lucasmn/newsdesk/app/gateway"
	"github.com/lucasmn/newsdesk/app/pipeline"
	"github.com/lucasmn/newsdesk/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was requested
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting NewsDesk", "version", cfg.GetVersion(), "model", appCfg.Model)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	profiles := agents.NewProfiles(appCfg.Model)
	if err := profiles.Run(appCfg.ProfilesDir); err != nil {
		slog.Error("Failed to load agent profiles", "error", err)
		os.Exit(1)
	}
	slog.Info("Agent profiles loaded", "count", profiles.Count())

	ctx := context.Background()
	client, err := gateway.NewClient(ctx, appCfg.GoogleAPIKey)
	if err != nil {
		slog.Error("Failed to initialize model client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	var fallback agents.NewsFallback
	if appCfg.RSSFallback {
		fallback = agents.NewRSSFallback(appCfg.UserAgent)
	}

	finder := agents.NewTopicFinder(client, profiles)
	searcher := agents.NewNewsSearcher(client, profiles, fallback)
	collector := agents.NewContentCollector(client, profiles, agents.NewPageExtractor(appCfg.UserAgent))
	editor := agents.NewContentEditor(client, profiles)
	reviewer := agents.NewContentReviewer(client, profiles)
	publisher := agents.NewPublisher(os.Stdout)

	articleRepo := database.NewArticleRepository(db)

	newsPipeline := pipeline.New(searcher, collector, editor, reviewer, publisher, articleRepo)

	jobStore := tasks.NewJobStore()
	runner := tasks.NewRunner(newsPipeline, articleRepo, jobStore)
	defer runner.Stop()

	handler := api.NewHandler(finder, newsPipeline, runner, jobStore, articleRepo)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
