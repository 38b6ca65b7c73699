package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/ovumlab/ovumsort/internal/config"
	"github.com/ovumlab/ovumsort/internal/storage"
)

// initStorage opens the record store selected by configuration. The default
// is a SQLite database so analysis history survives the session; set
// storage.backend to "memory" for a throwaway session store.
func initStorage(ctx context.Context) (storage.Store, error) {
	backend := viper.GetString("storage.backend")
	if backend == "memory" {
		return storage.NewMemoryStore(), nil
	}

	dbPath := viper.GetString("storage.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/ovumsort/ovumsort.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
