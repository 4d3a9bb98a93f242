package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/trraform/crontrigger/pkg/trigger"
)

var fireCmd = &cobra.Command{
	Use:   "fire",
	Short: "Dispatch once and exit",
	Long:  `Calls every configured endpoint once, concurrently, and prints the outcomes. Exits 0 whatever the endpoints answered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		opts := []trigger.Option{
			trigger.WithEndpoints(cfg.TriggerEndpoints()...),
			trigger.WithLogger(log),
			trigger.WithTimeout(cfg.Trigger.Timeout),
		}
		if cfg.Trigger.UserAgent != "" {
			opts = append(opts, trigger.WithUserAgent(cfg.Trigger.UserAgent))
		}

		d, err := trigger.New(cfg.Trigger.BaseURL, opts...)
		if err != nil {
			return err
		}

		report := d.Dispatch(trigger.WithSource(cmd.Context(), trigger.SourceCLI))

		out := cmd.OutOrStdout()
		for _, o := range report.Outcomes {
			switch {
			case o.Err != nil:
				fmt.Fprintf(out, "%-20s %-16s %8s  %v\n", o.Endpoint, o.Result(), o.Duration.Round(time.Millisecond), o.Err)
			default:
				fmt.Fprintf(out, "%-20s %-16s %8s  %d\n", o.Endpoint, o.Result(), o.Duration.Round(time.Millisecond), o.StatusCode)
			}
		}

		log.Debug("fire finished", slog.String("run_id", report.RunID), slog.Int("failed", len(report.Failed())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fireCmd)
}
