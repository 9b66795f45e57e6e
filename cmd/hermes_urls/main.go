// Package main provides the entry point for the hermes_urls CLI application.
package main

import (
	"os"

	"hermes/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
