package database

import (
	"context"
	"fmt"
)

// Entity identifiers come from the identity provider, so primary keys are the
// provider-assigned strings rather than locally generated uuids.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT,
		name TEXT NOT NULL DEFAULT '',
		image_url TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS workspaces (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		owner_id TEXT,
		image_url TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS workspaces_slug_idx ON workspaces (slug)`,

	// No foreign keys on workspace_members: lifecycle events carry no ordering
	// guarantee, so a membership may legitimately arrive before its user or
	// workspace row exists. Orphaned rows are ignored by the read side.
	`CREATE TABLE IF NOT EXISTS workspace_members (
		user_id TEXT NOT NULL,
		workspace_id TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY (user_id, workspace_id)
	)`,

	`CREATE TABLE IF NOT EXISTS sync_events (
		id UUID PRIMARY KEY,
		event_type TEXT NOT NULL,
		external_id TEXT NOT NULL,
		delivery_id TEXT NOT NULL,
		received_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS sync_events_external_id_idx ON sync_events (external_id)`,
}

func (d *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := d.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
