package storage

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS eateries (
		id SERIAL PRIMARY KEY,
		name VARCHAR(256) NOT NULL,
		address VARCHAR(256) NOT NULL DEFAULT 'Unknown',
		contact VARCHAR(20) NOT NULL DEFAULT 'Unknown',
		why_flag TEXT NOT NULL DEFAULT '',
		flag BOOLEAN NOT NULL DEFAULT FALSE,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id SERIAL PRIMARY KEY,
		review_text TEXT NOT NULL,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		why_flag TEXT NOT NULL DEFAULT '',
		flag BOOLEAN NOT NULL DEFAULT FALSE,
		flagged_before BOOLEAN NOT NULL DEFAULT FALSE,
		eatery_id INTEGER NOT NULL REFERENCES eateries(id)
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_eatery_id_idx ON reviews (eatery_id)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
