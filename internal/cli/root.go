package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notez",
	Short: "Ephemeral geo-tagged notes with a weekly purge",
	Long:  "Notez keeps geo-tagged notes that live for at most a week: every Sunday the collection clears itself on first access. Deadlines drive urgency colors until then.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
}
