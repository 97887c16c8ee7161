package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gyeh/civicres/internal/model"
)

// EncodeJSON writes doc indented by four spaces, with HTML characters left as-is.
func EncodeJSON(w io.Writer, doc *model.CleanedDocument) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode output json: %w", err)
	}
	return nil
}
