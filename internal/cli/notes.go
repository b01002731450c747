package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifarangiis/Note-Z/internal/notes"
	"github.com/ifarangiis/Note-Z/internal/prefs"
)

// openStore opens the database and wraps it in the lifecycle engine.
// Respects NOTEZ_DB, falls back to ~/.notez/notez.db.
func openStore() (*notes.Store, *prefs.DB, error) {
	dbPath := os.Getenv("NOTEZ_DB")
	if dbPath == "" {
		var err error
		dbPath, err = prefs.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := prefs.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return notes.New(db), db, nil
}

// parseDeadline accepts RFC3339, "2006-01-02 15:04", or a bare date.
// Bare forms are read in local time, matching how deadlines are set on device.
func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized deadline %q (want RFC3339, YYYY-MM-DD HH:MM, or YYYY-MM-DD)", s)
}

// parseColor reads an ARGB hex color like "#FF64B5F6", "0xFF64B5F6" or
// "64B5F6" (alpha defaults to FF).
func parseColor(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) == 6 {
		hex = "FF" + hex
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", s, err)
	}
	return uint32(v), nil
}

func formatDeadline(n notes.Note, now time.Time) string {
	if n.Deadline == nil {
		return ""
	}
	u := notes.Classify(n.Deadline, now)
	return fmt.Sprintf("due %s [%s]", n.Deadline.Format("2006-01-02 15:04"), u.Label())
}

// --- add command ---

var (
	addDesc     string
	addLat      float64
	addLng      float64
	addDeadline string
	addColor    string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a note at a location",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	deadline, err := parseDeadline(addDeadline)
	if err != nil {
		return err
	}
	color, err := parseColor(addColor)
	if err != nil {
		return err
	}

	s, db, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	added, err := s.Add(notes.NoteDraft{
		Title:        strings.Join(args, " "),
		Description:  addDesc,
		Latitude:     addLat,
		Longitude:    addLng,
		Deadline:     deadline,
		DisplayColor: color,
	})
	if err != nil {
		return fmt.Errorf("add note: %w", err)
	}

	fmt.Printf("created %s %q\n", added.ID, added.Title)
	fmt.Printf("  color: #%08X\n", added.DisplayColor)
	if d := formatDeadline(added, time.Now()); d != "" {
		fmt.Printf("  %s\n", d)
	}
	return nil
}

// --- list command ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List this week's notes",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, db, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	all, err := s.List()
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	now := time.Now()
	days := notes.DaysRemainingInWeek(now)
	if len(all) == 0 {
		fmt.Println("No notes this week.")
		return nil
	}

	if days == 0 {
		fmt.Printf("%d note(s) — purge day, they clear today\n\n", len(all))
	} else {
		fmt.Printf("%d note(s), %d day(s) left this week\n\n", len(all), days)
	}

	for _, n := range all {
		fmt.Printf("  %s  %s\n", n.ID, n.Title)
		if n.Description != "" {
			fmt.Printf("      %s\n", n.Description)
		}
		fmt.Printf("      at %.4f, %.4f\n", n.Latitude, n.Longitude)
		if d := formatDeadline(n, now); d != "" {
			fmt.Printf("      %s\n", d)
		}
	}
	return nil
}

// --- edit command ---

var (
	editTitle         string
	editDesc          string
	editLat           float64
	editLng           float64
	editDeadline      string
	editClearDeadline bool
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long:  "Edit the given note. Only the fields passed as flags change; creation time and color never do.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, db, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	all, err := s.List()
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	var cur *notes.Note
	for i := range all {
		if all[i].ID == args[0] {
			cur = &all[i]
			break
		}
	}
	if cur == nil {
		return fmt.Errorf("note %s not found", args[0])
	}

	n := *cur
	if cmd.Flags().Changed("title") {
		n.Title = editTitle
	}
	if cmd.Flags().Changed("desc") {
		n.Description = editDesc
	}
	if cmd.Flags().Changed("lat") {
		n.Latitude = editLat
	}
	if cmd.Flags().Changed("lng") {
		n.Longitude = editLng
	}
	if editClearDeadline {
		n.Deadline = nil
	} else if cmd.Flags().Changed("deadline") {
		deadline, err := parseDeadline(editDeadline)
		if err != nil {
			return err
		}
		n.Deadline = deadline
	}

	if err := s.Update(n); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	fmt.Printf("updated %s\n", n.ID)
	return nil
}

// --- rm command ---

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Remove a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	s, db, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := s.Delete(args[0]); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

// --- purge command ---

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Clear all notes now",
	Long:  "Clear the whole collection immediately, without waiting for Sunday.",
	RunE:  runPurge,
}

func runPurge(cmd *cobra.Command, args []string) error {
	s, db, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := s.PurgeAll(); err != nil {
		return fmt.Errorf("purge: %w", err)
	}
	fmt.Println("purged all notes")
	return nil
}

func init() {
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "Description text")
	addCmd.Flags().Float64Var(&addLat, "lat", 0, "Latitude")
	addCmd.Flags().Float64Var(&addLng, "lng", 0, "Longitude")
	addCmd.Flags().StringVar(&addDeadline, "deadline", "", "Deadline (RFC3339, YYYY-MM-DD HH:MM, or YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addColor, "color", "", "ARGB hex color, e.g. #FF64B5F6 (random if omitted)")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDesc, "desc", "d", "", "New description")
	editCmd.Flags().Float64Var(&editLat, "lat", 0, "New latitude")
	editCmd.Flags().Float64Var(&editLng, "lng", 0, "New longitude")
	editCmd.Flags().StringVar(&editDeadline, "deadline", "", "New deadline")
	editCmd.Flags().BoolVar(&editClearDeadline, "clear-deadline", false, "Remove the deadline")
}
