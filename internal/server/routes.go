package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ifarangiis/Note-Z/internal/notes"
)

// noteJSON is a stored note annotated with live urgency. The annotation is
// recomputed on every request because urgency is a function of now.
type noteJSON struct {
	notes.Note
	Urgency      string `json:"urgency"`
	UrgencyLabel string `json:"urgency_label"`
	RenderColor  uint32 `json:"render_color"`
}

func annotate(n notes.Note, now time.Time) noteJSON {
	u := notes.Classify(n.Deadline, now)
	return noteJSON{
		Note:         n,
		Urgency:      u.String(),
		UrgencyLabel: u.Label(),
		RenderColor:  notes.RenderColor(n, now),
	}
}

// writeStoreError maps engine errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	var nf notes.NotFoundError
	if errors.As(err, &nf) {
		http.Error(w, `{"error":"`+nf.Error()+`"}`, http.StatusNotFound)
		return
	}
	var de notes.DeserializationError
	if errors.As(err, &de) {
		http.Error(w, `{"error":"stored data is corrupt: `+de.Err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	now := time.Now()
	out := make([]noteJSON, len(all))
	for i, n := range all {
		out[i] = annotate(n, now)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":             len(out),
		"days_left_in_week": notes.DaysRemainingInWeek(now),
		"notes":             out,
	})
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	var req notes.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, `{"error":"title required"}`, http.StatusBadRequest)
		return
	}

	added, err := s.store.Add(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(annotate(added, time.Now()))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Latitude    float64    `json:"latitude"`
		Longitude   float64    `json:"longitude"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, `{"error":"title required"}`, http.StatusBadRequest)
		return
	}

	err := s.store.Update(notes.Note{
		ID:          noteID,
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Deadline:    req.Deadline,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "updated", "id": noteID})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	// Deleting an absent note is still a success.
	if err := s.store.Delete(noteID); err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted", "id": noteID})
}

func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	if err := s.store.PurgeAll(); err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "purged"})
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"week_start":     notes.StartOfWeek(now).Format(time.RFC3339),
		"week_end":       notes.EndOfWeek(now).Format(time.RFC3339),
		"days_remaining": notes.DaysRemainingInWeek(now),
	})
}
