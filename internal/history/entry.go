package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultLimit is the number of entries Recent returns for a non-positive limit.
const DefaultLimit = 20

// Entry is one recorded write attempt.
type Entry struct {
	CreatedAt time.Time
	Domain    string
	Reload    string
	Error     string
	Keys      []string
	ID        int64
	Success   bool
	Changed   bool
}

// Record stores an entry and returns its id, then prunes entries beyond the manager's
// retention. A zero CreatedAt uses the current time.
func (m *Manager) Record(ctx context.Context, e Entry) (int64, error) {
	if e.Domain == "" {
		return 0, errors.New("history entry requires a domain")
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := m.db.ExecContext(ctx,
		`INSERT INTO writes (domain, keys, success, changed, reload, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Domain, strings.Join(e.Keys, ","), e.Success, e.Changed, e.Reload, e.Error, created.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to record history entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read history entry id: %w", err)
	}

	if _, err := m.Prune(ctx, m.retention); err != nil {
		return id, err
	}
	return id, nil
}

// Recent returns the newest entries first.
func (m *Manager) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := m.db.QueryContext(ctx,
		`SELECT id, domain, keys, success, changed, reload, error, created_at
		 FROM writes ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			keys    string
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Domain, &keys, &e.Success, &e.Changed, &e.Reload, &e.Error, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if keys != "" {
			e.Keys = strings.Split(keys, ",")
		}
		e.CreatedAt = time.Unix(created, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}
