package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gyeh/civicres/internal/config"
	"github.com/gyeh/civicres/internal/exitcode"
	"github.com/gyeh/civicres/internal/logging"
	"github.com/gyeh/civicres/internal/model"
	"github.com/gyeh/civicres/internal/transform"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run the clean and report what would be written (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&cfg.InputPath, "file", "f", "", "Path to the raw JSON file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	// Count every malformed resource instead of stopping at the first.
	cfg.OnMalformed = config.OnMalformedSkip
	cfg.DryRun = true

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := transform.Run(log, &cfg)
	if err != nil {
		os.Exit(exitCodeFor(log, err))
	}

	printPlan(os.Stdout, summary)
	return nil
}

func printPlan(w io.Writer, s *model.CleanSummary) {
	good := color.New(color.FgGreen).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w, "=== civicclean plan ===")
	fmt.Fprintf(w, "File:           %s\n", s.InputPath)
	fmt.Fprintf(w, "Run ID:         %s\n", s.RunID)
	fmt.Fprintf(w, "Counties:       %d\n", s.Counties)
	fmt.Fprintf(w, "Phone numbers:  %d\n", s.PhoneNumbers)
	fmt.Fprintf(w, "Facility names: %d\n", s.FacilityNames)
	fmt.Fprintf(w, "Addresses:      %d (%d unknown)\n", s.Addresses, s.UnknownAddresses)

	if len(s.SkippedByType) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Skipped resource types:")
		types := make([]string, 0, len(s.SkippedByType))
		for t := range s.SkippedByType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(w, "  %-16s %d\n", t, s.SkippedByType[t])
		}
	}

	fmt.Fprintln(w)
	if s.Malformed > 0 {
		fmt.Fprintf(w, "Malformed: %s\n", warn(fmt.Sprintf("%d resource(s) would abort a default run", s.Malformed)))
		return
	}
	fmt.Fprintf(w, "Malformed: %s\n", good("none"))
}
