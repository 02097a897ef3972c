package main

import (
	"os"

	"github.com/mmynk/splitbill/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
