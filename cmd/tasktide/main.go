// Package main is the entry point for the tasktide CLI.
package main

import (
	"fmt"
	"os"

	"tasktide/internal/app"
	"tasktide/internal/cli"
	"tasktide/internal/infra/logging"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	if l, ok := container.Logger.(*logging.Logger); ok {
		defer func() { _ = l.Close() }()
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
