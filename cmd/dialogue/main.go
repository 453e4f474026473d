// Package main is the entry point for the dialogue CLI.
package main

import (
	"os"

	"github.com/jmylchreest/dialogue/cmd/dialogue/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
