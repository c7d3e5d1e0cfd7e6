package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45210, "-45,210"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercentageOfLimit(t *testing.T) {
	tests := []struct {
		cost  float64
		limit float64
		lo    int
		hi    int
	}{
		{2.37, 5.0, 47, 48},
		{1.00, 5.0, 20, 20},
		{2.50, 5.0, 50, 50},
		{5.00, 5.0, 100, 100},
		{0.00, 5.0, 0, 0},
		{12.0, 5.0, 100, 100},
		{-1.0, 5.0, 0, 0},
		{3.0, 0, 0, 0},
		{3.0, -2, 0, 0},
	}
	for _, tt := range tests {
		got := PercentageOfLimit(tt.cost, tt.limit)
		if got < tt.lo || got > tt.hi {
			t.Errorf("PercentageOfLimit(%.2f, %.2f) = %d, want %d-%d", tt.cost, tt.limit, got, tt.lo, tt.hi)
		}
	}
}

func TestSessionElapsedPercentage(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reset := start.Add(5 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"at start", start, 0},
		{"before start", start.Add(-time.Hour), 0},
		{"halfway", start.Add(150 * time.Minute), 50},
		{"rounds", start.Add(3 * time.Minute), 1},
		{"after reset", reset.Add(time.Hour), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionElapsedPercentage(start, reset, tt.now); got != tt.want {
				t.Errorf("SessionElapsedPercentage = %d, want %d", got, tt.want)
			}
		})
	}

	if got := SessionElapsedPercentage(reset, start, start); got != 0 {
		t.Errorf("inverted span = %d, want 0", got)
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(0, 10); got != "[----------]" {
		t.Errorf("ProgressBar(0,10) = %q", got)
	}
	if got := ProgressBar(100, 10); got != "[==========]" {
		t.Errorf("ProgressBar(100,10) = %q", got)
	}
	if got := ProgressBar(55, 10); strings.Count(got, "=") != 5 {
		t.Errorf("ProgressBar(55,10) = %q, want 5 fill characters", got)
	}
	if got := ProgressBar(250, 4); got != "[====]" {
		t.Errorf("ProgressBar(250,4) = %q, want clamped", got)
	}
	if got := ProgressBar(-10, 4); got != "[----]" {
		t.Errorf("ProgressBar(-10,4) = %q, want clamped", got)
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2*time.Hour + 20*time.Minute, "2h 20m"},
		{30 * time.Minute, "30m"},
		{59 * time.Second, "0m"},
		{8 * time.Hour, "8h 0m"},
		{-time.Minute, "0m"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.d); got != tt.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	if got := FormatUSD(2.371); got != "$2.37" {
		t.Errorf("FormatUSD = %q, want $2.37", got)
	}
}
