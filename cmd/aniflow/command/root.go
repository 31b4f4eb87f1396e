package command

// root.go defines the root command for the aniflow CLI.
// set up the global flags and shared helpers here.

import (
	"fmt"
	"log/slog"
	"os"

	"aniflow/internal/config"

	"github.com/spf13/cobra"
)

var databaseURL string // Global flag overriding DATABASE_URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aniflow",
	Short: "aniflow - anime tracker schema tool",
	Long: `aniflow manages the persistent schema of the AniFlow anime tracker:
users, profiles, anime metadata, ratings, private notes and watchlists.

Use "aniflow command -help" or "aniflow command -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database URL (overrides DATABASE_URL)")
}

// loadConfig loads the environment configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the slog logger described by LOG_LEVEL and LOG_FORMAT.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
