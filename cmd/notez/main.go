package main

import (
	"os"

	"github.com/ifarangiis/Note-Z/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
