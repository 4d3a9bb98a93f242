package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/trraform/crontrigger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduler with the probe and manual trigger server",
	Long:  `Starts the cron scheduler and an HTTP server exposing health probes, metrics and the manual trigger route.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		opts := []crontrigger.Option{
			crontrigger.WithContext(cmd.Context()),
			crontrigger.WithConfig(cfg),
			crontrigger.WithLogger(log),
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			opts = append(opts, crontrigger.WithAddress(addr))
		}
		if cmd.Flags().Changed("run-on-start") {
			runOnStart, _ := cmd.Flags().GetBool("run-on-start")
			opts = append(opts, crontrigger.WithRunOnStart(runOnStart))
		}

		app, err := crontrigger.New(opts...)
		if err != nil {
			return err
		}

		log.Info("scheduler configured",
			slog.String("schedule", cfg.Trigger.Schedule),
			slog.String("timezone", cfg.Trigger.Timezone),
			slog.Any("urls", app.Dispatcher().URLs()),
		)

		return app.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
	serveCmd.Flags().Bool("run-on-start", false, "Dispatch once immediately after start")
}
