package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/pensionview/retirement-projection/internal/store"
	"github.com/spf13/cobra"
)

var (
	flagVerbose  bool
	flagSettings string
	flagDatabase string
	flagEnvFile  string

	settings config.Settings
	logger   calculation.Logger = calculation.NopLogger{}
)

var rootCmd = &cobra.Command{
	Use:   "pensionview",
	Short: "Retirement projection and expense insight CLI",
	Long: "Project accumulation, annuitization and drawdown of a retirement account, " +
		"compare scenarios, and relate monthly spending to the projected pension.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log projection detail to stderr")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "db", "", "Database file (overrides the settings)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file with GEMINI_API_KEY")
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", flagEnvFile, err)
	}

	path := flagSettings
	if path == "" {
		path = config.SettingsPath()
	}
	s, err := config.LoadSettingsFrom(path)
	if err != nil {
		return err
	}
	if flagDatabase != "" {
		s.Storage.DatabasePath = flagDatabase
	}
	settings = s

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	logger = calculation.NewSlogLogger(slog.New(handler))
	return nil
}

// newEngine returns an engine logging through the CLI logger.
func newEngine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger)
	engine.Debug = flagVerbose
	return engine
}

func openStore() (*store.Store, error) {
	st, err := store.Open(settings.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}
