package model

import "time"

// UsageSnapshot is the usage block selected from the external usage report.
type UsageSnapshot struct {
	StartTime       time.Time
	ResetTime       time.Time
	TotalTokens     int64
	CostUSD         float64
	TokensPerMinute float64
	Entries         int
}

// HasReset reports whether a reset instant is known.
func (s UsageSnapshot) HasReset() bool {
	return !s.ResetTime.IsZero()
}
