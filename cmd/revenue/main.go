package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/revenue-grid/internal/core/config"
	"github.com/aevon-lab/revenue-grid/internal/pipeline"
	"github.com/aevon-lab/revenue-grid/internal/projection"
	"github.com/aevon-lab/revenue-grid/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "revenue.yaml", "Path to configuration file")
	once := flag.Bool("once", false, "Run the pipeline once and exit")
	flag.Parse()

	// 0. Bootstrap logger until config says otherwise
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load .env (optional) and configuration
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Failed to load .env file", "error", err)
		os.Exit(1)
	}

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Log.NewLogger(os.Stdout))
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"source", cfg.Source.Type,
		"window", cfg.Window.StartDate+".."+cfg.Window.EndDate,
	)

	window, err := cfg.Window.Parse()
	if err != nil {
		slog.Error("Invalid window", "error", err)
		os.Exit(1)
	}
	interval, err := cfg.Pipeline.Interval()
	if err != nil {
		slog.Error("Invalid schedule interval", "value", cfg.Pipeline.ScheduleInterval, "error", err)
		os.Exit(1)
	}

	// 2. Initialize storage (database + migrations) and the extract source
	stores, err := openStores(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	// 3. Initialize pipeline
	p := pipeline.New(stores.source, stores.store, pipeline.Options{
		Window:     window,
		ShardCount: cfg.Pipeline.ShardCount,
		Validate:   cfg.Pipeline.Validate,
	}, exporters(cfg.Export)...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	if *once {
		report, err := p.Run(ctx)
		if err != nil {
			slog.Error("Pipeline run failed", "error", err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			slog.Error("Failed to write run report", "error", err)
			os.Exit(1)
		}
		return
	}

	// 4. Start scheduler
	scheduler := pipeline.NewScheduler(interval, p)
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			slog.Error("Scheduler stopped with error", "error", err)
		}
	}()

	// 5. Initialize server (query API), or just wait for shutdown
	if !cfg.Server.Enabled {
		slog.Info("HTTP server disabled by config")
		<-ctx.Done()
		slog.Info("Shutdown complete")
		return
	}

	projectionSvc := projection.NewService(stores.store, p)
	srv := server.New(cfg.Server.Addr(), stores.db, cfg.Server.Mode)
	projectionSvc.RegisterRoutes(srv.Engine)

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}
