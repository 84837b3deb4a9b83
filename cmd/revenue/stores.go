package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	corecfg "github.com/aevon-lab/revenue-grid/internal/core/config"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/aevon-lab/revenue-grid/internal/core/storage/file"
	"github.com/aevon-lab/revenue-grid/internal/core/storage/postgres"
	"github.com/aevon-lab/revenue-grid/internal/core/storage/sqlite"
	"github.com/aevon-lab/revenue-grid/internal/export"
	"github.com/aevon-lab/revenue-grid/internal/migrations"
	"github.com/aevon-lab/revenue-grid/internal/pipeline"
)

// stores bundles what the pipeline reads from and writes to.
type stores struct {
	db      *sql.DB
	source  storage.Source
	store   storage.RevenueStore
	closers []func() error
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}
}

// openStores opens the configured database, runs migrations, then builds the
// revenue store and the extract source on top of it.
func openStores(cfg *corecfg.Config) (*stores, error) {
	s := &stores{}

	switch cfg.Database.Type {
	case migrations.DatabasePostgres:
		db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.closers = append(s.closers, db.Close)

		if err := migrations.RunMigrations(db, migrations.DatabasePostgres, cfg.Database.AutoMigrate); err != nil {
			s.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}

		adapter, err := postgres.NewAdapter(db)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, adapter.Close)
		s.source = adapter
		s.store = postgres.NewRevenueAdapter(db)

	case migrations.DatabaseSQLite:
		db, err := sqlite.Open(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.closers = append(s.closers, db.Close)

		if err := migrations.RunMigrations(db, migrations.DatabaseSQLite, cfg.Database.AutoMigrate); err != nil {
			s.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}

		store := sqlite.NewStore(db)
		s.source = store
		s.store = store

	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Database.Type)
	}

	if cfg.Source.Type == "file" {
		src, err := file.Load(cfg.Source.Path)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.source = src
	}

	return s, nil
}

func exporters(cfg corecfg.ExportConfig) []pipeline.Exporter {
	var out []pipeline.Exporter
	if cfg.ParquetPath != "" {
		out = append(out, export.NewParquetExporter(cfg.ParquetPath))
	}
	if cfg.XLSXPath != "" {
		out = append(out, export.NewXLSXExporter(cfg.XLSXPath))
	}
	return out
}
