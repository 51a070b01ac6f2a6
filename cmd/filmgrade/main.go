package main

import (
	"os"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/cmd/filmgrade/commands"
)

// main is the entry point for the filmgrade CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
