package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/civicres/internal/exitcode"
	"github.com/gyeh/civicres/internal/logging"
	"github.com/gyeh/civicres/internal/transform"
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&cfg.InputPath, "file", "f", "", "Path to the raw JSON file (required)")
	f.StringVarP(&cfg.ResultPath, "result", "r", "", "Path to write the cleaned result (required)")
	f.StringVar(&cfg.OnMalformed, "on-malformed", cfg.OnMalformed, "What to do with a resource that cannot be normalized: abort or skip")
	f.StringVar(&cfg.Format, "format", cfg.Format, "Result format: json or parquet")
}

func runClean(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateWithResult(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := transform.Run(log, &cfg)
	if err != nil {
		os.Exit(exitCodeFor(log, err))
	}

	fmt.Printf("Clean complete: %d counties, %d phone numbers, %d addresses (%d unknown), %d facility names (%.1fs)\n",
		summary.Counties, summary.PhoneNumbers, summary.Addresses, summary.UnknownAddresses,
		summary.FacilityNames, summary.DurationTotal.Seconds())

	if summary.Malformed > 0 {
		log.Warn().Int("malformed", summary.Malformed).Msg("malformed resources were skipped")
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

// exitCodeFor logs a pipeline failure and picks the exit code for its phase.
func exitCodeFor(log zerolog.Logger, err error) int {
	var pe *transform.PipelineError
	if !errors.As(err, &pe) {
		log.Error().Err(err).Msg("clean failed")
		return exitcode.ValidationError
	}

	ev := log.Error().Err(pe.Err).Str("phase", pe.Phase)
	var re *transform.RecordError
	if errors.As(pe.Err, &re) {
		ev = ev.Str("county", re.County).Int("resource", re.Index)
	}
	ev.Msg("clean failed")

	switch pe.Phase {
	case transform.PhaseLoad:
		return exitcode.ValidationError
	case transform.PhaseTransform:
		return exitcode.MalformedRecord
	default:
		return exitcode.WriteError
	}
}
