package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/config"
	"github.com/phrazzld/event-registry/internal/platform/logger"
	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	catalogPath string
	quantity    int
	logLevel    string
	showMetrics bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "eventdemo",
		Short:         "Register events, buy tickets and print the outcome",
		Example:       "  eventdemo --quantity 10\n  eventdemo --catalog events.yaml --metrics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			logCfg := logger.FromConfig(cfg.Log)
			logCfg.Output = stderr
			log, err := logger.Setup(logCfg)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}
			ctx := logger.WithLogger(cmd.Context(), log.With("run_id", uuid.NewString()))

			app, err := newApplication(cfg, log, clock.NewSystem(), stdout)
			if err != nil {
				return err
			}

			evts, err := app.loadEvents(opts.catalogPath)
			if err != nil {
				return err
			}

			if err := app.run(ctx, evts, opts.quantity); err != nil {
				return err
			}

			if opts.showMetrics {
				return app.writeMetrics()
			}
			return nil
		},
	}

	root.Flags().StringVar(&opts.configPath, "config", "", "Config file (yaml, toml or json); defaults to ./config.yaml when present")
	root.Flags().StringVar(&opts.catalogPath, "catalog", "", "Seed catalog file; the built-in sample workshop is used when empty")
	root.Flags().IntVarP(&opts.quantity, "quantity", "q", 10, "Tickets to buy for the first registered event")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level: debug|info|warn|error")
	root.Flags().BoolVar(&opts.showMetrics, "metrics", false, "Print collected metrics in Prometheus text format after the run")

	return root
}

func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.showMetrics {
		cfg.Metrics.Enabled = true
	}
	return cfg, nil
}
