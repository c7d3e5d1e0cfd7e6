// Package window computes usage-window boundaries: rolling 5-hour activity
// blocks inferred from transcript timestamps, and fixed daily reset cycles.
package window

import (
	"time"

	"github.com/theirongolddev/ccline/internal/model"
)

// FloorHour zeroes the minutes, seconds and nanoseconds of t in its own location.
func FloorHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// InferBlocks partitions ascending timestamps into non-overlapping blocks.
// A block opens at the hour floor of its first timestamp; a timestamp strictly
// after the open block's end starts the next one.
func InferBlocks(sorted []time.Time) []model.ActivityBlock {
	var blocks []model.ActivityBlock
	for _, ts := range sorted {
		if len(blocks) > 0 && !ts.After(blocks[len(blocks)-1].End) {
			continue
		}
		start := FloorHour(ts)
		blocks = append(blocks, model.ActivityBlock{
			Start: start,
			End:   start.Add(model.BlockDuration),
		})
	}
	return blocks
}

// CurrentBlockStart returns the start of the block containing now, or the
// last block's start when none does. ok is false for empty input.
func CurrentBlockStart(sorted []time.Time, now time.Time) (start time.Time, ok bool) {
	blocks := InferBlocks(sorted)
	if len(blocks) == 0 {
		return time.Time{}, false
	}
	for _, b := range blocks {
		if b.Contains(now) {
			return b.Start, true
		}
	}
	return blocks[len(blocks)-1].Start, true
}

// BlockRemaining is the time left in the block that started at start.
// It is zero or negative once the block has ended.
func BlockRemaining(start, now time.Time) time.Duration {
	return start.Add(model.BlockDuration).Sub(now)
}
