package window

import (
	"errors"
	"fmt"
	"time"
)

// DefaultCycleHours are the local hours at which the fixed usage cycle resets.
var DefaultCycleHours = []int{6, 11, 16, 21}

// Countdown is the time left until the next fixed-cycle reset.
type Countdown struct {
	Hours        int64
	Minutes      int64
	TotalSeconds int64
	NextReset    time.Time
}

// Remaining returns the countdown as a duration.
func (c Countdown) Remaining() time.Duration {
	return time.Duration(c.TotalSeconds) * time.Second
}

// NextCycleReset finds the first cycle hour strictly after now's hour, or the
// first cycle hour of the following day, in now's location. ok is false when
// hours is empty or the computed remaining time is not positive.
func NextCycleReset(now time.Time, hours []int) (Countdown, bool) {
	if len(hours) == 0 {
		return Countdown{}, false
	}

	y, m, d := now.Date()
	var next time.Time
	for _, h := range hours {
		if now.Hour() < h {
			next = time.Date(y, m, d, h, 0, 0, 0, now.Location())
			break
		}
	}
	if next.IsZero() {
		next = time.Date(y, m, d+1, hours[0], 0, 0, 0, now.Location())
	}

	secs := int64(next.Sub(now) / time.Second)
	if secs <= 0 {
		return Countdown{}, false
	}
	return Countdown{
		Hours:        secs / 3600,
		Minutes:      (secs % 3600) / 60,
		TotalSeconds: secs,
		NextReset:    next,
	}, true
}

// ValidateCycleHours checks that hours is non-empty, within 0-23 and strictly
// ascending.
func ValidateCycleHours(hours []int) error {
	if len(hours) == 0 {
		return errors.New("cycle hours must not be empty")
	}
	for i, h := range hours {
		if h < 0 || h > 23 {
			return fmt.Errorf("cycle hour %d out of range 0-23", h)
		}
		if i > 0 && h <= hours[i-1] {
			return fmt.Errorf("cycle hours must be strictly ascending (%d after %d)", h, hours[i-1])
		}
	}
	return nil
}
