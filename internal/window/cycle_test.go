package window

import (
	"testing"
	"time"
)

var testZone = time.FixedZone("TST", 2*3600)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, testZone)
}

func TestNextCycleReset(t *testing.T) {
	tests := []struct {
		now       time.Time
		wantHour  int
		wantDay   int
		wantHours int64
		wantMins  int64
	}{
		{at(18, 40), 21, 1, 2, 20},
		{at(5, 30), 6, 1, 0, 30},
		{at(10, 45), 11, 1, 0, 15},
		{at(15, 0), 16, 1, 1, 0},
		{at(20, 30), 21, 1, 0, 30},
		{at(22, 0), 6, 2, 8, 0},
		{at(0, 0), 6, 1, 6, 0},
		{at(21, 0), 6, 2, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.now.Format("15:04"), func(t *testing.T) {
			cd, ok := NextCycleReset(tt.now, DefaultCycleHours)
			if !ok {
				t.Fatal("NextCycleReset returned !ok")
			}
			if cd.NextReset.Hour() != tt.wantHour || cd.NextReset.Day() != tt.wantDay {
				t.Errorf("NextReset = %v, want day %d %02d:00", cd.NextReset, tt.wantDay, tt.wantHour)
			}
			if cd.NextReset.Location() != testZone {
				t.Errorf("NextReset location = %v, want %v", cd.NextReset.Location(), testZone)
			}
			if cd.Hours != tt.wantHours || cd.Minutes != tt.wantMins {
				t.Errorf("remaining = %dh%dm, want %dh%dm", cd.Hours, cd.Minutes, tt.wantHours, tt.wantMins)
			}
			if cd.Remaining() != cd.NextReset.Sub(tt.now) {
				t.Errorf("Remaining = %v, want %v", cd.Remaining(), cd.NextReset.Sub(tt.now))
			}
		})
	}
}

func TestNextCycleReset_Idempotent(t *testing.T) {
	now := at(13, 7)
	a, _ := NextCycleReset(now, DefaultCycleHours)
	b, _ := NextCycleReset(now, DefaultCycleHours)
	if a != b {
		t.Errorf("NextCycleReset not idempotent: %+v vs %+v", a, b)
	}
}

func TestNextCycleReset_DecreasesThenResets(t *testing.T) {
	prev := int64(-1)
	start := at(11, 0)
	for i := 0; i < 5*60; i++ {
		cd, ok := NextCycleReset(start.Add(time.Duration(i)*time.Minute), DefaultCycleHours)
		if !ok {
			t.Fatalf("minute %d: !ok", i)
		}
		if prev >= 0 && cd.TotalSeconds >= prev {
			t.Fatalf("minute %d: remaining %d did not decrease from %d", i, cd.TotalSeconds, prev)
		}
		prev = cd.TotalSeconds
	}

	cd, _ := NextCycleReset(at(16, 0), DefaultCycleHours)
	if cd.TotalSeconds != 5*3600 {
		t.Errorf("at boundary remaining = %ds, want %d", cd.TotalSeconds, 5*3600)
	}
}

func TestNextCycleReset_NoHours(t *testing.T) {
	if _, ok := NextCycleReset(at(12, 0), nil); ok {
		t.Error("NextCycleReset with no hours returned ok")
	}
}

func TestNextCycleReset_CustomHours(t *testing.T) {
	cd, ok := NextCycleReset(at(23, 30), []int{0, 12})
	if !ok {
		t.Fatal("!ok")
	}
	if cd.Hours != 0 || cd.Minutes != 30 {
		t.Errorf("remaining = %dh%dm, want 0h30m", cd.Hours, cd.Minutes)
	}
}

func TestValidateCycleHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   []int
		wantErr bool
	}{
		{"default", DefaultCycleHours, false},
		{"single", []int{9}, false},
		{"empty", nil, true},
		{"out of range", []int{6, 24}, true},
		{"negative", []int{-1, 6}, true},
		{"unsorted", []int{11, 6}, true},
		{"duplicate", []int{6, 6}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCycleHours(tt.hours)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCycleHours(%v) error = %v, wantErr %v", tt.hours, err, tt.wantErr)
			}
		})
	}
}
