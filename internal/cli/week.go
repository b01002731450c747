package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifarangiis/Note-Z/internal/notes"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the current week boundaries",
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()
		fmt.Printf("week of %s\n", notes.StartOfWeek(now).Format("2006-01-02"))
		fmt.Printf("  starts: %s (Sunday 00:00)\n", notes.StartOfWeek(now).Format("2006-01-02"))
		fmt.Printf("  ends:   %s (Saturday 23:59)\n", notes.EndOfWeek(now).Format("2006-01-02"))

		switch days := notes.DaysRemainingInWeek(now); days {
		case 0:
			fmt.Println("  today is purge day: notes clear on first access")
		case 1:
			fmt.Println("  1 day until the Sunday purge")
		default:
			fmt.Printf("  %d days until the Sunday purge\n", days)
		}
	},
}
