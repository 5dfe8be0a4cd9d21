package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"faqbot/internal/app"
	"faqbot/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "faqctl",
	Short: "Operate the FAQ bot from the command line",
	Long: `faqctl seeds, lists and queries the FAQ corpus using the same
configuration (.env / environment) as the API server.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openApp loads configuration and wires the application. Logs go to stderr
// so command output stays clean.
func openApp(ctx context.Context) (*app.App, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.SetDefault(app.NewLogger(cfg, os.Stderr))

	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}
