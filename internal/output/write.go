package output

import (
	"fmt"
	"os"

	"github.com/gyeh/civicres/internal/config"
	"github.com/gyeh/civicres/internal/model"
)

// WriteFile writes doc to path in the given format. runID tags parquet rows.
func WriteFile(path, format string, doc *model.CleanedDocument, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}

	switch format {
	case config.FormatJSON:
		err = EncodeJSON(f, doc)
	case config.FormatParquet:
		err = EncodeParquet(f, model.FlattenResources(doc, runID))
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close result file: %w", err)
	}
	return nil
}
