package client

import (
	"math/rand"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ifarangiis/Note-Z/internal/notes"
	"github.com/ifarangiis/Note-Z/internal/prefs"
	"github.com/ifarangiis/Note-Z/internal/server"
)

// testAPI starts the real API server over in-memory storage and points a
// Client at it. Returns the client and the engine store for seeding.
func testAPI(t *testing.T) (*Client, *notes.Store) {
	t.Helper()
	db, err := prefs.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	wednesday := time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)
	store := notes.New(db,
		notes.WithClock(func() time.Time { return wednesday }),
		notes.WithEntropy(rand.New(rand.NewSource(42))))

	ts := httptest.NewServer(server.New(db, store, "test-version"))
	t.Cleanup(ts.Close)
	t.Setenv("NOTEZ_URL", ts.URL)

	return New(), store
}

func TestHealthy(t *testing.T) {
	c, _ := testAPI(t)
	if !c.Healthy() {
		t.Error("Healthy = false against a running server")
	}
}

func TestHealthyServerDown(t *testing.T) {
	t.Setenv("NOTEZ_URL", "http://127.0.0.1:1")
	c := New()
	if c.Healthy() {
		t.Error("Healthy = true against a dead address")
	}
}

func TestGetHealth(t *testing.T) {
	c, _ := testAPI(t)

	h, err := c.GetHealth()
	if err != nil {
		t.Fatalf("GetHealth: %v", err)
	}
	if h.Status != "ok" {
		t.Errorf("Status = %q, want ok", h.Status)
	}
	if h.Version != "test-version" {
		t.Errorf("Version = %q, want test-version", h.Version)
	}
	if !h.DB {
		t.Error("DB = false, want reachable")
	}
}

func TestListNotes(t *testing.T) {
	c, store := testAPI(t)

	nl, err := c.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if nl.Count != 0 {
		t.Errorf("Count = %d on fresh store, want 0", nl.Count)
	}

	if _, err := store.Add(notes.NoteDraft{Title: "from the engine"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	nl, err = c.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if nl.Count != 1 || len(nl.Notes) != 1 {
		t.Fatalf("Count = %d, len = %d, want 1", nl.Count, len(nl.Notes))
	}
	if nl.Notes[0].Title != "from the engine" {
		t.Errorf("Title = %q", nl.Notes[0].Title)
	}
	if nl.Notes[0].Urgency != "none" {
		t.Errorf("Urgency = %q, want none", nl.Notes[0].Urgency)
	}
	if nl.DaysLeftInWeek < 0 || nl.DaysLeftInWeek > 6 {
		t.Errorf("DaysLeftInWeek = %d, want 0..6", nl.DaysLeftInWeek)
	}
}

func TestGetWeek(t *testing.T) {
	c, _ := testAPI(t)

	wk, err := c.GetWeek()
	if err != nil {
		t.Fatalf("GetWeek: %v", err)
	}
	if wk.WeekStart.Weekday() != time.Sunday {
		t.Errorf("WeekStart falls on %v, want Sunday", wk.WeekStart.Weekday())
	}
	if wk.WeekEnd.Weekday() != time.Saturday {
		t.Errorf("WeekEnd falls on %v, want Saturday", wk.WeekEnd.Weekday())
	}
	if wk.DaysRemaining < 0 || wk.DaysRemaining > 6 {
		t.Errorf("DaysRemaining = %d, want 0..6", wk.DaysRemaining)
	}
}

func TestPurge(t *testing.T) {
	c, store := testAPI(t)

	store.Add(notes.NoteDraft{Title: "a"})
	store.Add(notes.NoteDraft{Title: "b"})

	if err := c.Purge(); err != nil {
		t.Fatalf("Purge: %v", err)
	}

	nl, err := c.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if nl.Count != 0 {
		t.Errorf("Count = %d after purge, want 0", nl.Count)
	}
}
