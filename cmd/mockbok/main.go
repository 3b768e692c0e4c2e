package main

import (
	"os"

	"github.com/mockbok-dev/mockbok/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
