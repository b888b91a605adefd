package main

import (
	"os"

	"github.com/wonny/cagrlab/cmd/cagr/commands"
)

// main is the entry point for the cagr CLI
// go run ./cmd/cagr [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
