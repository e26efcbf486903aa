// Package history records every settings write in a small sqlite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultRetention is how many write entries are kept before the oldest are pruned.
const DefaultRetention = 500

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
}

// Option configures a Manager.
type Option func(*Manager)

// WithRetention keeps at most n entries. A non-positive n keeps everything.
func WithRetention(n int) Option {
	return func(m *Manager) {
		m.retention = n
	}
}

// Manager owns the history database connection.
type Manager struct {
	db        *sql.DB
	retention int
}

// NewManager opens the history database at dsn and brings its schema up to date.
func NewManager(ctx context.Context, dsn string, opts ...Option) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	// One process writes at a time; a single connection keeps :memory: databases shared.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	manager := &Manager{db: db, retention: DefaultRetention}
	for _, opt := range opts {
		opt(manager)
	}

	if err := manager.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return manager, nil
}

// Prune deletes all but the newest keep entries and returns how many were removed.
func (m *Manager) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	res, err := m.db.ExecContext(ctx,
		`DELETE FROM writes WHERE id NOT IN (
			SELECT id FROM writes ORDER BY created_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned history entries: %w", err)
	}
	return removed, nil
}

// Count returns the number of stored entries.
func (m *Manager) Count(ctx context.Context) (int, error) {
	var n int
	if err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM writes").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history entries: %w", err)
	}
	return n, nil
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close history database: %w", err)
		}
	}
	return nil
}
