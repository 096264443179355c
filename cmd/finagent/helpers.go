package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SFA16SCM21C/Finagent/internal/common"
	"github.com/SFA16SCM21C/Finagent/internal/config"
	"github.com/SFA16SCM21C/Finagent/internal/model"
	"github.com/SFA16SCM21C/Finagent/internal/normalize"
	"github.com/SFA16SCM21C/Finagent/internal/service"
	"github.com/SFA16SCM21C/Finagent/internal/storage"
)

// initStorage opens the configured database and applies migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// readRawBatch loads a raw transaction batch from a JSON file.
func readRawBatch(path string) ([]model.RawTransaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not read transaction batch %s", path), err)
	}
	raws, err := normalize.DecodeBatch(data)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("%s is not a valid transaction batch", path), err)
	}
	return raws, nil
}

// writeJSON writes v to path as indented JSON, creating directories as
// needed.
func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
