package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyrie12138irving/Schedlab-2025-ics2-1/internal/sim"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schedlab",
		Short:         "MLFQ scheduling policy replay harness",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		workloadPath string
		configPath   string
		tracePath    string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a workload file through the policy engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sim.LoadConfig(configPath)
			if tracePath != "" {
				cfg.TraceCSV = tracePath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			events, err := sim.LoadWorkload(workloadPath)
			if err != nil {
				return err
			}

			log := newLogger(cfg.LogLevel)
			r := sim.NewRunner(events, log)
			if cfg.TraceCSV != "" {
				if err := r.EnableTrace(cfg.TraceCSV); err != nil {
					return err
				}
			}

			cycles, err := r.Run()
			if err != nil {
				return err
			}
			cpu, ioTask := r.Occupants()
			log.Info("replay done", "cycles", cycles, "cpu", int(cpu), "io", int(ioTask))
			return nil
		},
	}

	cmd.Flags().StringVar(&workloadPath, "workload", "", "YAML event workload to replay")
	cmd.Flags().StringVar(&configPath, "config", "", "optional runner config file")
	cmd.Flags().StringVar(&tracePath, "trace", "", "CSV decision trace output (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	cmd.MarkFlagRequired("workload")
	return cmd
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With(slog.String("app", "schedlab"))
}
