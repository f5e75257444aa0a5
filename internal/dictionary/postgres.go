package dictionary

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadPostgres loads the dictionary from a Postgres keyword table at
// startup. The pool is closed before returning; the engine never touches
// the database again, so a fixed table content behaves exactly like a fixed
// file version.
//
// Expected schema:
//
//	CREATE TABLE dictionary_meta (version TEXT NOT NULL);
//	CREATE TABLE keywords (
//	    position  INT NOT NULL,
//	    canonical TEXT NOT NULL,
//	    category  TEXT NOT NULL,
//	    aliases   TEXT[] NOT NULL DEFAULT '{}'
//	);
func LoadPostgres(ctx context.Context, databaseURL string) (*Dictionary, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	var version string
	err = pool.QueryRow(ctx, `SELECT version FROM dictionary_meta LIMIT 1`).Scan(&version)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary version: %w", err)
	}

	// position defines the dictionary scan order, which fixes the ordering
	// of matched/missing keyword lists.
	rows, err := pool.Query(ctx,
		`SELECT canonical, category, aliases FROM keywords ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var category string
		if err := rows.Scan(&e.Canonical, &category, &e.Aliases); err != nil {
			return nil, fmt.Errorf("failed to scan keyword row: %w", err)
		}
		e.Category = Category(category)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keyword rows: %w", err)
	}

	return build(version, entries)
}
