package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/civicres/internal/exitcode"
	"github.com/gyeh/civicres/internal/logging"
	"github.com/gyeh/civicres/internal/model"
	"github.com/gyeh/civicres/internal/output"
)

var inspectPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a Parquet result file",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectPath, "result", "r", "", "Path to a Parquet result file (required)")
	_ = inspectCmd.MarkFlagRequired("result")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	r, err := output.OpenParquet(inspectPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open result file")
		os.Exit(exitcode.ValidationError)
	}
	defer r.Close()

	rows, err := r.ReadAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to read result rows")
		os.Exit(exitcode.ValidationError)
	}

	printInspect(os.Stdout, inspectPath, rows)
	return nil
}

func printInspect(w io.Writer, path string, rows []model.ResourceRow) {
	byType := make(map[string]int)
	counties := make(map[string]bool)
	runIDs := make(map[string]bool)
	for _, row := range rows {
		byType[row.ResourceType]++
		counties[row.County] = true
		runIDs[row.RunID] = true
	}

	fmt.Fprintln(w, "=== civicclean inspect ===")
	fmt.Fprintf(w, "File:     %s\n", path)
	fmt.Fprintf(w, "Rows:     %d\n", len(rows))
	fmt.Fprintf(w, "Counties: %d\n", len(counties))
	fmt.Fprintf(w, "Runs:     %d\n", len(runIDs))
	for _, rt := range model.AllResourceTypes {
		fmt.Fprintf(w, "  %-16s %d\n", rt.Name, byType[rt.Name])
	}
}
