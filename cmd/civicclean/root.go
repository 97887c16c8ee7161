package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/civicres/internal/config"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:               "civicclean",
	Short:             "County resource record cleaner",
	Long:              "Normalizes phone numbers and mailing addresses in scraped county resource records and writes a canonical JSON (or Parquet) document.",
	SilenceUsage:      true,
	PersistentPreRunE: loadFileConfig,
	RunE:              runClean,
}

func init() {
	// A missing .env is fine; it only supplies defaults.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", envOr("CIVICCLEAN_LOG_FORMAT", cfg.LogFormat), "Log format: text or json (or set CIVICCLEAN_LOG_FORMAT)")
	pf.StringVar(&cfg.LogLevel, "log-level", envOr("CIVICCLEAN_LOG_LEVEL", cfg.LogLevel), "Log level: debug, info, warn or error")
	pf.StringVar(&cfg.ConfigPath, "config", os.Getenv("CIVICCLEAN_CONFIG"), "Optional YAML config file")
}

// loadFileConfig merges the --config file into cfg. Flags given on the
// command line keep their values.
func loadFileConfig(cmd *cobra.Command, args []string) error {
	if cfg.ConfigPath == "" {
		return nil
	}
	fc, err := config.ReadFile(cfg.ConfigPath)
	if err != nil {
		return err
	}
	cfg.Merge(fc, func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	})
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
