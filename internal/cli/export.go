package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all notes as JSON",
	Long:  "Write the current collection to stdout as a JSON array, for backups or piping into other tools.",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, db, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	all, err := s.List()
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}
