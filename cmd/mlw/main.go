// Package main is the entry point for the mlw CLI.
package main

import (
	"github.com/manoslocales/marketwatch/cmd/mlw/cmd"
)

func main() {
	cmd.Execute()
}
