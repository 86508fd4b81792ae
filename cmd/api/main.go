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

// @title           Voter registration and e-balloting API
// @version         1.0
// @description     Voter registry, sessions, campaigns, ballots and results.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

const programName = "proyectofinal-api"

var globalFlags = struct {
	debug   bool
	envFile string
	port    string
	store   string
}{}

func slogPrintf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...),
		"component", programName,
	)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if globalFlags.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: globalFlags.debug,
		Level:     level,
	}))
	slog.SetDefault(logger)
	if _, err := maxprocs.Set(maxprocs.Logger(slogPrintf)); err != nil {
		logger.Error("set GOMAXPROCS failed", "error", err.Error())
	}
	return logger
}

func run(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, err := config.Load(globalFlags.envFile)
	if err != nil {
		return err
	}
	cfg, err = cfg.Override(globalFlags.port, globalFlags.store)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildAPI(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("bootstrap api: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("api shutdown close failed", "error", err.Error())
		}
	}()
	return app.Run(ctx)
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Serve the voter registration and balloting HTTP API",
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.envFile, "env-file", "", "dotenv file to load before the environment (default .env)")
	rootCmd.Flags().
		StringVarP(&globalFlags.port, "port", "p", "", "override HTTP_PORT")
	rootCmd.Flags().
		StringVar(&globalFlags.store, "store", "", "override STORE_DRIVER (memory, postgres or sqlite)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
