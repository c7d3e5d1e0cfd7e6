package model

import "time"

// BlockDuration is the length of one usage-accounting window.
const BlockDuration = 5 * time.Hour

// ActivityBlock is a 5-hour window inferred from transcript activity.
type ActivityBlock struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the block, inclusive of both ends.
func (b ActivityBlock) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}
