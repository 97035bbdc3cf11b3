// Package main is the entry point for the marketwatch server.
package main

import (
	"os"

	"github.com/manoslocales/marketwatch/cmd/marketwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
