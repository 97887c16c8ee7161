package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Population is a county population kept as the number text it was read
// with, so "1004125.0" stays a float. The empty value is JSON null.
type Population string

func (p Population) String() string { return string(p) }

func (p Population) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("null"), nil
	}
	return []byte(p), nil
}

func (p *Population) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("population: %w", err)
	}
	*p = Population(n)
	return nil
}
