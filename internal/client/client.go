package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultServerURL = "http://127.0.0.1:37808"
	httpTimeout      = 5 * time.Second
)

// Client talks to a running notez server.
type Client struct {
	http      *http.Client
	serverURL string
}

// New creates an API client.
// Respects the NOTEZ_URL env var, falls back to http://127.0.0.1:37808.
func New() *Client {
	url := os.Getenv("NOTEZ_URL")
	if url == "" {
		url = defaultServerURL
	}
	return &Client{
		http:      &http.Client{Timeout: httpTimeout},
		serverURL: url,
	}
}

// Health is the server's health report.
type Health struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime"`
	DB      bool    `json:"db"`
	DBPath  string  `json:"db_path"`
}

// AnnotatedNote is a note as the API returns it: stored fields plus the
// urgency annotation computed by the server at request time.
type AnnotatedNote struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	CreatedAt    time.Time  `json:"created_at"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	DisplayColor uint32     `json:"display_color"`
	Urgency      string     `json:"urgency"`
	UrgencyLabel string     `json:"urgency_label"`
	RenderColor  uint32     `json:"render_color"`
}

// NoteList is the response of the list endpoint.
type NoteList struct {
	Count          int             `json:"count"`
	DaysLeftInWeek int             `json:"days_left_in_week"`
	Notes          []AnnotatedNote `json:"notes"`
}

// Week is the response of the week endpoint.
type Week struct {
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	DaysRemaining int       `json:"days_remaining"`
}

// Healthy checks if the server is reachable.
func (c *Client) Healthy() bool {
	resp, err := c.http.Get(c.serverURL + "/api/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// GetHealth fetches the full health report.
func (c *Client) GetHealth() (Health, error) {
	var h Health
	err := c.getJSON("/api/health", &h)
	return h, err
}

// ListNotes fetches all notes with their live urgency annotations.
func (c *Client) ListNotes() (NoteList, error) {
	var nl NoteList
	err := c.getJSON("/api/notes", &nl)
	return nl, err
}

// GetWeek fetches the current week boundaries.
func (c *Client) GetWeek() (Week, error) {
	var wk Week
	err := c.getJSON("/api/week", &wk)
	return wk, err
}

// Purge asks the server to clear the whole collection.
func (c *Client) Purge() error {
	_, err := c.post("/api/notes/purge", nil)
	return err
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.serverURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s: %w", path, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}
	return nil
}

func (c *Client) post(path string, body []byte) ([]byte, error) {
	resp, err := c.http.Post(c.serverURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}
	if resp.StatusCode >= 400 {
		return data, fmt.Errorf("POST %s: status %d: %s", path, resp.StatusCode, data)
	}
	return data, nil
}
