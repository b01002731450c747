package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ifarangiis/Note-Z/internal/notes"
	"github.com/ifarangiis/Note-Z/internal/prefs"
)

// Server is the notez HTTP API server. It binds the lifecycle engine to
// localhost JSON endpoints; the engine's own mutex makes the concurrent
// handlers safe.
type Server struct {
	db      *prefs.DB
	store   *notes.Store
	router  chi.Router
	version string
	started time.Time
}

// New creates a new Server over the given database and note store.
func New(db *prefs.DB, store *notes.Store, version string) *Server {
	s := &Server{
		db:      db,
		store:   store,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/notes", s.handleListNotes)
		r.Post("/notes", s.handleAddNote)
		r.Post("/notes/purge", s.handlePurge)
		r.Put("/notes/{noteID}", s.handleUpdateNote)
		r.Delete("/notes/{noteID}", s.handleDeleteNote)

		r.Get("/week", s.handleWeek)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}
