package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/ats-checker/internal/dictionary"
)

// loadDictionary resolves the keyword dictionary in priority order: the
// --dictionary flag, the DICTIONARY_PATH env var, the DATABASE_URL env var
// (Postgres keyword table), then the embedded default. Any load failure is
// fatal; the engine must not start with a degraded dictionary.
func loadDictionary(ctx context.Context, path string) (*dictionary.Dictionary, error) {
	if path == "" {
		path = os.Getenv("DICTIONARY_PATH")
	}
	if path != "" {
		dict, err := dictionary.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary from %s: %w", path, err)
		}
		return dict, nil
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dict, err := dictionary.LoadPostgres(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary from database: %w", err)
		}
		return dict, nil
	}

	dict, err := dictionary.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded dictionary: %w", err)
	}
	return dict, nil
}
