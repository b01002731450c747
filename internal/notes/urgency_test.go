package notes

import (
	"testing"
	"time"
)

func TestClassifyNilDeadline(t *testing.T) {
	nows := []time.Time{
		date(2026, 8, 16, 0, 0, 0),
		date(2026, 8, 19, 23, 59, 59),
		date(2030, 1, 1, 12, 0, 0),
	}
	for _, now := range nows {
		if got := Classify(nil, now); got != UrgencyNone {
			t.Errorf("Classify(nil, %v) = %v, want UrgencyNone", now, got)
		}
	}
}

func TestClassifyTiers(t *testing.T) {
	now := date(2026, 8, 19, 12, 0, 0)

	tests := []struct {
		name   string
		offset time.Duration
		want   Urgency
	}{
		{"one hour past", -time.Hour, UrgencyPastDue},
		{"twelve hours ahead", 12 * time.Hour, UrgencyHigh},
		{"just under a day", 23*time.Hour + 59*time.Minute, UrgencyHigh},
		{"exactly one day", 24 * time.Hour, UrgencyMedium},
		{"two days ahead", 48 * time.Hour, UrgencyMedium},
		{"just under three days", 71 * time.Hour, UrgencyMedium},
		{"exactly three days", 72 * time.Hour, UrgencyLow},
		{"five days ahead", 5 * 24 * time.Hour, UrgencyLow},
	}

	for _, tt := range tests {
		deadline := now.Add(tt.offset)
		if got := Classify(&deadline, now); got != tt.want {
			t.Errorf("%s: Classify(now%+v) = %v, want %v", tt.name, tt.offset, got, tt.want)
		}
	}
}

func TestUrgencyString(t *testing.T) {
	tests := []struct {
		u    Urgency
		want string
	}{
		{UrgencyNone, "none"},
		{UrgencyLow, "low"},
		{UrgencyMedium, "medium"},
		{UrgencyHigh, "high"},
		{UrgencyPastDue, "past_due"},
	}
	for _, tt := range tests {
		if got := tt.u.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRenderColorNoDeadline(t *testing.T) {
	now := date(2026, 8, 19, 12, 0, 0)
	n := Note{DisplayColor: 0xFF64B5F6}

	if got := RenderColor(n, now); got != n.DisplayColor {
		t.Errorf("RenderColor = %#x, want note's own color %#x", got, n.DisplayColor)
	}
}

func TestRenderColorTierOverrides(t *testing.T) {
	now := date(2026, 8, 19, 12, 0, 0)
	past := now.Add(-time.Hour)
	n := Note{DisplayColor: 0xFF64B5F6, Deadline: &past}

	got := RenderColor(n, now)
	if got == n.DisplayColor {
		t.Error("RenderColor returned the note color for a past-due deadline")
	}
	if got != tierTable[UrgencyPastDue].Color {
		t.Errorf("RenderColor = %#x, want past-due tier color %#x", got, tierTable[UrgencyPastDue].Color)
	}
}

func TestTierLabels(t *testing.T) {
	for _, u := range []Urgency{UrgencyNone, UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyPastDue} {
		if u.Label() == "" {
			t.Errorf("tier %v has no label", u)
		}
	}
}
