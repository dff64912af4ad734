// Package main is the entry point for datectl, the offline date hierarchy
// checker.
package main

import (
	"os"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/cli"
)

func main() {
	os.Exit(cli.Execute())
}
