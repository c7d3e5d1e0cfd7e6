package model

import "time"

// UsageEvent is one transcript record that carried token usage.
type UsageEvent struct {
	Timestamp           time.Time
	InputTokens         int64
	OutputTokens        int64
	CacheReadTokens     int64
	CacheCreationTokens int64
	IsSidechain         bool
	IsError             bool
}

// Excluded reports whether the event must be ignored by every calculation.
func (e UsageEvent) Excluded() bool {
	return e.IsSidechain || e.IsError
}

// ContextTokens is the prompt-side token count the event occupied in the context window.
func (e UsageEvent) ContextTokens() int64 {
	return e.InputTokens + e.CacheReadTokens + e.CacheCreationTokens
}
