package usage

import (
	"context"
	"log/slog"
	"time"

	"github.com/theirongolddev/ccline/internal/logging"
	"github.com/theirongolddev/ccline/internal/model"
)

// SnapshotStore persists the most recent usage snapshot.
type SnapshotStore interface {
	LoadSnapshot() (snap model.UsageSnapshot, fetchedAt time.Time, ok bool, err error)
	SaveSnapshot(snap model.UsageSnapshot, fetchedAt time.Time) error
}

// CachedReporter serves a stored snapshot while it is younger than ttl and
// otherwise refreshes it from the wrapped reporter. Store errors fall through
// to a direct fetch and are logged at debug level.
type CachedReporter struct {
	next  Reporter
	store SnapshotStore
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time
}

// NewCachedReporter wraps next with a snapshot cache. A nil log discards.
func NewCachedReporter(next Reporter, store SnapshotStore, ttl time.Duration, log *slog.Logger) *CachedReporter {
	if log == nil {
		log = logging.Discard()
	}
	return &CachedReporter{next: next, store: store, ttl: ttl, log: log, now: time.Now}
}

// Fetch implements Reporter.
func (c *CachedReporter) Fetch(ctx context.Context) (*model.UsageSnapshot, error) {
	now := c.now()
	snap, fetchedAt, ok, err := c.store.LoadSnapshot()
	switch {
	case err != nil:
		c.log.Debug("usage cache load failed", "err", err)
	case ok:
		if age := now.Sub(fetchedAt); age >= 0 && age < c.ttl {
			return &snap, nil
		}
	}

	fetched, err := c.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.store.SaveSnapshot(*fetched, now); err != nil {
		c.log.Debug("usage cache save failed", "err", err)
	}
	return fetched, nil
}
