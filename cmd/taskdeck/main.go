// Package main is the entry point for the taskdeck CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/domain"
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
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	err = rootCmd.Execute()
	if errors.Is(err, domain.ErrNotAuthenticated) || errors.Is(err, domain.ErrSessionExpired) {
		return fmt.Errorf("%w (run 'taskdeck login')", err)
	}
	return err
}
