package notes

import (
	"math"
	"time"
)

// Urgency is a note's deadline proximity tier.
type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyLow
	UrgencyMedium
	UrgencyHigh
	UrgencyPastDue
)

// String returns the wire label for the tier.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyMedium:
		return "medium"
	case UrgencyHigh:
		return "high"
	case UrgencyPastDue:
		return "past_due"
	default:
		return "none"
	}
}

// tierInfo is the fixed display metadata for one urgency tier.
type tierInfo struct {
	Label string
	Color uint32 // ARGB
}

// tierTable maps each tier to its label and color. UrgencyNone has no tier
// color: a note without a deadline renders with its own DisplayColor.
var tierTable = map[Urgency]tierInfo{
	UrgencyNone:    {Label: "No deadline", Color: 0},
	UrgencyLow:     {Label: "Low priority", Color: 0xFF4CAF50},
	UrgencyMedium:  {Label: "Due soon", Color: 0xFFFF9800},
	UrgencyHigh:    {Label: "Due today", Color: 0xFFFF5722},
	UrgencyPastDue: {Label: "Past due", Color: 0xFFD32F2F},
}

// Label returns the human display label for the tier.
func (u Urgency) Label() string {
	return tierTable[u].Label
}

// Classify maps a deadline and the current instant to an urgency tier.
// Urgency is a function of now, so it is computed fresh at every render
// and never persisted.
func Classify(deadline *time.Time, now time.Time) Urgency {
	if deadline == nil {
		return UrgencyNone
	}
	if deadline.Before(now) {
		return UrgencyPastDue
	}
	days := int(math.Floor(deadline.Sub(now).Hours() / 24))
	switch {
	case days < 1:
		return UrgencyHigh
	case days < 3:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// RenderColor returns the color a note should display with right now:
// the tier color when a deadline drives urgency, the note's own assigned
// color otherwise. This is the one place tier and per-note color interact.
func RenderColor(n Note, now time.Time) uint32 {
	u := Classify(n.Deadline, now)
	if u == UrgencyNone {
		return n.DisplayColor
	}
	return tierTable[u].Color
}
