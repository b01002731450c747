package notes

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ifarangiis/Note-Z/internal/prefs"
)

// Keys in the durable store. The whole collection lives under one list key;
// purge bookkeeping is a single timestamp.
const (
	notesKey     = "notes"
	lastPurgeKey = "last_purge_date"
)

// Store owns the persisted note collection and the last-purge timestamp.
// Every operation runs a full read-mutate-write cycle against the prefs
// store, so a mutex serializes them end to end: concurrent HTTP handlers
// would otherwise lose updates.
type Store struct {
	mu      sync.Mutex
	prefs   prefs.Store
	now     func() time.Time
	entropy *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's time source. Tests pin this to a fixed
// instant to exercise purge and urgency behavior deterministically.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEntropy overrides the randomness source used for ids and color picks.
func WithEntropy(r *rand.Rand) Option {
	return func(s *Store) { s.entropy = r }
}

// New creates a Store over the given prefs handle.
func New(p prefs.Store, opts ...Option) *Store {
	s := &Store{
		prefs:   p,
		now:     time.Now,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newID returns a fresh ULID from the store's clock and entropy.
func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

// List returns all notes in insertion order. It first runs the weekly purge
// check, so a Sunday's first read clears the previous week's notes.
func (s *Store) List() ([]Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.maybePurge(); err != nil {
		return nil, err
	}
	return s.load()
}

// Add assigns an id, creation time, and (when the draft has none) a palette
// color, persists the note, and returns it.
func (s *Store) Add(d NoteDraft) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		ID:           s.newID(),
		Title:        d.Title,
		Description:  d.Description,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		CreatedAt:    s.now(),
		Deadline:     d.Deadline,
		DisplayColor: d.DisplayColor,
	}
	if n.DisplayColor == 0 {
		n.DisplayColor = pickColor(s.entropy)
	}

	all, err := s.load()
	if err != nil {
		return Note{}, err
	}
	all = append(all, n)
	if err := s.save(all); err != nil {
		return Note{}, err
	}
	return n, nil
}

// Update replaces the stored note sharing n.ID. The stored CreatedAt and
// DisplayColor are immutable and carried over regardless of what the
// caller passes. Returns NotFoundError for an unknown id.
func (s *Store) Update(n Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == n.ID {
			n.CreatedAt = all[i].CreatedAt
			n.DisplayColor = all[i].DisplayColor
			all[i] = n
			return s.save(all)
		}
	}
	return NotFoundError{ID: n.ID}
}

// Delete removes the note with the given id. Deleting an absent id is a
// successful no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return s.save(all)
		}
	}
	return nil
}

// PurgeAll unconditionally clears the collection.
func (s *Store) PurgeAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purge()
}

// maybePurge runs the weekly purge check. Caller holds s.mu.
//
// A purge fires when today is a Sunday and no purge has run on this
// calendar day yet. That bounds it to at most once per Sunday no matter
// how many reads happen, and skips Sundays the process never runs on:
// purging is best-effort on access, not a background timer.
func (s *Store) maybePurge() error {
	now := s.now()
	if now.Weekday() != time.Sunday {
		return nil
	}

	raw, ok, err := s.prefs.GetString(lastPurgeKey)
	if err != nil {
		return PersistenceError{Op: "read last purge date", Err: err}
	}
	if ok {
		last, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return DeserializationError{Record: raw, Err: err}
		}
		if sameDay(last, now) {
			return nil
		}
	}

	if err := s.purge(); err != nil {
		return err
	}
	if err := s.prefs.SetString(lastPurgeKey, now.Format(time.RFC3339)); err != nil {
		return PersistenceError{Op: "write last purge date", Err: err}
	}
	log.Printf("weekly purge: collection cleared (%s)", now.Format("2006-01-02"))
	return nil
}

// purge persists the empty collection. Caller holds s.mu.
func (s *Store) purge() error {
	if err := s.prefs.SetStringList(notesKey, nil); err != nil {
		return PersistenceError{Op: "purge notes", Err: err}
	}
	return nil
}

// sameDay reports whether two instants fall on the same calendar day
// in their respective locations.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// load reads and decodes the whole collection. Caller holds s.mu.
func (s *Store) load() ([]Note, error) {
	records, err := s.prefs.GetStringList(notesKey)
	if err != nil {
		return nil, PersistenceError{Op: "read notes", Err: err}
	}
	all := make([]Note, 0, len(records))
	for _, rec := range records {
		n, err := decodeNote(rec)
		if err != nil {
			return nil, DeserializationError{Record: rec, Err: err}
		}
		all = append(all, n)
	}
	return all, nil
}

// save encodes and persists the whole collection. Caller holds s.mu.
func (s *Store) save(all []Note) error {
	records := make([]string, 0, len(all))
	for _, n := range all {
		rec, err := encodeNote(n)
		if err != nil {
			return PersistenceError{Op: "encode note", Err: err}
		}
		records = append(records, rec)
	}
	if err := s.prefs.SetStringList(notesKey, records); err != nil {
		return PersistenceError{Op: "write notes", Err: err}
	}
	return nil
}
