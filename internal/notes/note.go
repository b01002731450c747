package notes

import (
	"encoding/json"
	"time"
)

// Note is a geo-tagged note with an optional deadline.
// ID and CreatedAt are assigned by the store at creation and never change;
// DisplayColor is fixed at creation and survives updates.
type Note struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	CreatedAt    time.Time  `json:"created_at"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	DisplayColor uint32     `json:"display_color"`
}

// NoteDraft carries the caller-supplied fields for Add.
// A zero DisplayColor means the store picks one from the palette.
type NoteDraft struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	DisplayColor uint32     `json:"display_color,omitempty"`
}

// encodeNote serializes a note to its stored wire form.
func encodeNote(n Note) (string, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeNote parses a stored record back into a Note.
func decodeNote(record string) (Note, error) {
	var n Note
	if err := json.Unmarshal([]byte(record), &n); err != nil {
		return Note{}, err
	}
	return n, nil
}
