package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/config"
	"github.com/Veraticus/contractor-evaluation/internal/salesforce"
	"github.com/Veraticus/contractor-evaluation/internal/service"
	"github.com/Veraticus/contractor-evaluation/internal/storage"
)

// initBackend builds the configured evaluation backend. The returned
// cleanup func is always non-nil.
func initBackend(ctx context.Context) (service.Backend, func(), error) {
	cfg, err := config.LoadBackendConfig()
	if err != nil {
		return nil, func() {}, common.NewUserError("invalid backend configuration", err)
	}

	switch cfg.Kind {
	case config.BackendSalesforce:
		client, err := salesforce.NewClient(ctx, cfg.Salesforce)
		if err != nil {
			return nil, func() {}, fmt.Errorf("failed to create Salesforce client: %w", err)
		}
		slog.Debug("Using Salesforce backend", "instance", cfg.Salesforce.InstanceURL)
		return client, func() {}, nil

	default:
		store, err := openStorage(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, func() {}, err
		}
		slog.Debug("Using local backend", "database", cfg.DatabasePath)
		return store, func() { _ = store.Close() }, nil
	}
}

// initStorage opens the local database regardless of the selected backend.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	return openStorage(ctx, config.DatabasePath())
}

func openStorage(ctx context.Context, dbPath string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
