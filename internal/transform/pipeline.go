package transform

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/civicres/internal/config"
	"github.com/gyeh/civicres/internal/model"
	"github.com/gyeh/civicres/internal/output"
	"github.com/gyeh/civicres/internal/source"
)

const (
	PhaseLoad      = "load"
	PhaseTransform = "transform"
	PhaseWrite     = "write"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full cleaning pipeline: load → transform → write.
// With cfg.DryRun the write phase is skipped.
func Run(log zerolog.Logger, cfg *config.Config) (*model.CleanSummary, error) {
	totalStart := time.Now()
	runID := uuid.New().String()
	log = log.With().Str("run_id", runID).Logger()

	// Phase 1: Load
	log.Info().Str("file", cfg.InputPath).Msg("loading input")
	start := time.Now()
	doc, err := source.Load(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseLoad, Err: err}
	}
	if err := source.Validate(doc); err != nil {
		return nil, &PipelineError{Phase: PhaseLoad, Err: err}
	}
	loadDur := time.Since(start)
	log.Info().
		Str("file", filepath.Base(cfg.InputPath)).
		Int("counties", len(doc.Results)).
		Dur("duration", loadDur).
		Msg("load complete")

	// Phase 2: Transform
	start = time.Now()
	cleaned, stats, err := New(log, cfg).Transform(doc)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseTransform, Err: err}
	}
	transformDur := time.Since(start)
	log.Info().
		Int("phone_numbers", stats.PhoneNumbers).
		Int("facility_names", stats.FacilityNames).
		Int("addresses", stats.Addresses).
		Int("unknown_addresses", stats.UnknownAddresses).
		Int("malformed", stats.Malformed).
		Dur("duration", transformDur).
		Msg("transform complete")

	summary := &model.CleanSummary{
		RunID:             runID,
		InputPath:         cfg.InputPath,
		ResultPath:        cfg.ResultPath,
		Format:            cfg.Format,
		Counties:          stats.Counties,
		PhoneNumbers:      stats.PhoneNumbers,
		FacilityNames:     stats.FacilityNames,
		Addresses:         stats.Addresses,
		UnknownAddresses:  stats.UnknownAddresses,
		Malformed:         stats.Malformed,
		SkippedByType:     stats.SkippedByType,
		DurationLoad:      loadDur,
		DurationTransform: transformDur,
	}

	// Phase 3: Write
	if cfg.DryRun {
		log.Info().Msg("dry run, skipping write")
	} else {
		start = time.Now()
		if err := output.WriteFile(cfg.ResultPath, cfg.Format, cleaned, runID); err != nil {
			return nil, &PipelineError{Phase: PhaseWrite, Err: err}
		}
		summary.DurationWrite = time.Since(start)
		log.Info().
			Str("result", cfg.ResultPath).
			Str("format", cfg.Format).
			Dur("duration", summary.DurationWrite).
			Msg("write complete")
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Int("counties", summary.Counties).
		Int("skipped", summary.Skipped()).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("clean pipeline complete")

	return summary, nil
}
