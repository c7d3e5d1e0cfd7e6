// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatUSD formats a cost with two decimals, e.g. "$2.37".
func FormatUSD(cost float64) string {
	return fmt.Sprintf("$%.2f", cost)
}

// FormatCountdown formats a remaining duration as "2h 20m", or "20m" under an hour.
func FormatCountdown(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock formats an instant as a 24-hour "HH:MM" in its own location.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// PercentageOfLimit returns value/limit as a rounded percentage clamped to 0-100.
// Non-positive values or limits yield 0.
func PercentageOfLimit(value, limit float64) int {
	if limit <= 0 || value <= 0 {
		return 0
	}
	return clampPercent(math.Round(value / limit * 100))
}

// SessionElapsedPercentage returns how far now is between start and reset, as a
// rounded percentage clamped to 0-100. A non-positive span yields 0.
func SessionElapsedPercentage(start, reset, now time.Time) int {
	total := reset.Sub(start)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(start)
	return clampPercent(math.Round(float64(elapsed) / float64(total) * 100))
}

// ProgressBar renders pct as "[=====-----]" with width cells between the brackets.
func ProgressBar(pct, width int) string {
	if width < 0 {
		width = 0
	}
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// FormatContextPercent formats a 0-100 fill percentage with one decimal.
func FormatContextPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

func clampPercent(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(v)
}
