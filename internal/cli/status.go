package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifarangiis/Note-Z/internal/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the local server",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	c := client.New()
	if !c.Healthy() {
		fmt.Println("notez server: not running")
		fmt.Println("  start it with: notez serve")
		return nil
	}

	h, err := c.GetHealth()
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	fmt.Printf("notez server: %s (version %s)\n", h.Status, h.Version)
	fmt.Printf("  db: %s (reachable: %v)\n", h.DBPath, h.DB)
	fmt.Printf("  uptime: %s\n", time.Duration(h.Uptime*float64(time.Second)).Round(time.Second))

	nl, err := c.ListNotes()
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	fmt.Printf("  notes: %d, days left this week: %d\n", nl.Count, nl.DaysLeftInWeek)
	return nil
}
