// Package store provides a SQLite-backed cache for usage snapshots.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/ccline/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed snapshot caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(1000)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Path returns the cache database location under cacheDir.
func Path(cacheDir string) string {
	return filepath.Join(cacheDir, "usage.db")
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveSnapshot replaces the stored snapshot.
func (c *Cache) SaveSnapshot(s model.UsageSnapshot, fetchedAt time.Time) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO usage_snapshots
		(id, fetched_at, start_time, reset_time, total_tokens, cost_usd, tokens_per_minute, entries)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		formatTime(fetchedAt), formatTime(s.StartTime), formatTime(s.ResetTime),
		s.TotalTokens, s.CostUSD, s.TokensPerMinute, s.Entries,
	)
	return err
}

// LoadSnapshot returns the stored snapshot and when it was fetched. ok is
// false when nothing has been stored yet.
func (c *Cache) LoadSnapshot() (model.UsageSnapshot, time.Time, bool, error) {
	var (
		s                  model.UsageSnapshot
		fetched            string
		startStr, resetStr sql.NullString
	)
	err := c.db.QueryRow(`SELECT fetched_at, start_time, reset_time,
		total_tokens, cost_usd, tokens_per_minute, entries
		FROM usage_snapshots WHERE id = 1`).Scan(
		&fetched, &startStr, &resetStr,
		&s.TotalTokens, &s.CostUSD, &s.TokensPerMinute, &s.Entries,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return s, time.Time{}, false, nil
	}
	if err != nil {
		return s, time.Time{}, false, err
	}

	fetchedAt, err := time.Parse(time.RFC3339Nano, fetched)
	if err != nil {
		return s, time.Time{}, false, fmt.Errorf("parsing fetched_at: %w", err)
	}
	s.StartTime = parseNullTime(startStr)
	s.ResetTime = parseNullTime(resetStr)
	return s, fetchedAt, true, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseNullTime(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, ns.String)
	return t
}
