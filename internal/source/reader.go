package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/civicres/internal/model"
)

// Load reads and decodes the raw JSON document at path.
func Load(path string) (*model.RawDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a raw document from r. Numbers are kept as json.Number.
func Decode(r io.Reader) (*model.RawDocument, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc model.RawDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode input json: %w", err)
	}
	return &doc, nil
}
