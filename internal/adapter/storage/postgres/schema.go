package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS device_preferences (
		device_id  TEXT        NOT NULL,
		key        TEXT        NOT NULL,
		value      TEXT        NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (device_id, key)
	)`,
	`CREATE TABLE IF NOT EXISTS consent_audit (
		id         UUID        PRIMARY KEY,
		device_id  TEXT        NOT NULL,
		action     TEXT        NOT NULL,
		details    TEXT,
		ip_address TEXT        NOT NULL,
		user_agent TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consent_audit_device ON consent_audit (device_id, created_at)`,
}

// Migrate creates the tables in one transaction. It is safe to run on
// every start.
func Migrate(ctx context.Context, pool Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
