// Package main is the entry point for the confluent-cost CLI.
package main

import (
	"os"

	"confluent-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
