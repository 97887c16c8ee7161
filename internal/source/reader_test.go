package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `{
  "results": [
    {
      "county": "Sangamon",
      "department_name": "Public Health",
      "population": 196343,
      "url": "https://example.org/sangamon",
      "resources": [
        {"type": "phone_number", "value": "217-555-0100", "tags": ["main"]},
        {"type": "address", "value": "2 W Jefferson Street Springfield IL 62702", "tags": []}
      ]
    }
  ]
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(doc.Results))
	}
	r := doc.Results[0]
	if r.County != "Sangamon" || r.URL != "https://example.org/sangamon" {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.Population.String() != "196343" {
		t.Errorf("population = %q, want verbatim 196343", r.Population)
	}
	if len(r.Resources) != 2 || r.Resources[0].Type != "phone_number" || r.Resources[0].Tags[0] != "main" {
		t.Errorf("unexpected resources: %+v", r.Resources)
	}
	if err := Validate(doc); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("/nonexistent/input.json"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Decode(strings.NewReader(`{"results": [`)); err == nil {
		t.Error("expected error for truncated json")
	}
}

func TestValidate_MissingFields(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"results": [
		{"county": "Cook", "population": 10, "resources": []},
		{"county": "", "population": 10, "resources": []}
	]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	err = Validate(doc)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if want := "results[1].county: required"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q missing %q", err, want)
	}
}

func TestValidate_NullPopulationAndEmptyType(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"results": [
		{"county": "Cook", "population": null, "resources": [{"type": "", "value": "x"}]}
	]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := Validate(doc); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if doc.Results[0].Population != "" {
		t.Errorf("null population decoded as %q", doc.Results[0].Population)
	}
}

func TestValidate_MissingResults(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"data": []}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := Validate(doc); err == nil {
		t.Fatal("expected error for missing results")
	}
}
