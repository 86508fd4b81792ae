package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rlopezl29/proyectofinal/internal/app/bootstrap"
	"github.com/rlopezl29/proyectofinal/internal/platform/config"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Open the persistent store.
// 3) Relay campaign outbox rows to the event bus and consume published results.

const programName = "proyectofinal-worker"

var globalFlags = struct {
	debug   bool
	envFile string
}{}

func run(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if globalFlags.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		logger.Info(fmt.Sprintf(format, v...), "component", programName)
	})); err != nil {
		logger.Error("set GOMAXPROCS failed", "error", err.Error())
	}

	cfg, err := config.Load(globalFlags.envFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildWorker(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("bootstrap worker: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("worker shutdown close failed", "error", err.Error())
		}
	}()
	return app.Run(ctx)
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Relay campaign events from the persistent outbox",
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.envFile, "env-file", "", "dotenv file to load before the environment (default .env)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
