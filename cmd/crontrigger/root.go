package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/trraform/crontrigger/internal/config"
	"github.com/trraform/crontrigger/middlewares"
	"github.com/trraform/crontrigger/pkg/logger"
	"github.com/trraform/crontrigger/pkg/trigger"
)

var rootCmd = &cobra.Command{
	Use:           "crontrigger",
	Short:         "Scheduled trigger for the API maintenance endpoints",
	Long:          `crontrigger calls the chunk update and leaderboard refresh endpoints of the API on a cron schedule.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("base-url", "", "Override the API base URL")
}

// loadConfig reads the config file named by --config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if base, _ := cmd.Flags().GetString("base-url"); base != "" {
		cfg.Trigger.BaseURL = base
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Log,
		trigger.RunIDExtractor(),
		middlewares.RequestIDExtractor(),
	).With(slog.String("service", "crontrigger"))
}
