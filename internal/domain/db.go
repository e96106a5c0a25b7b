package domain

import "context"

// Database defines lifecycle operations for the underlying store.
// Each implementation (SQLite, Postgres, etc.) owns its own migration
// files and strategy, so the entire backend stays swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
