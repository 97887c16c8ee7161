package transform

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/civicres/internal/config"
	"github.com/gyeh/civicres/internal/model"
	"github.com/gyeh/civicres/internal/normalize"
)

func rawDoc(resources ...model.RawResource) *model.RawDocument {
	return &model.RawDocument{Results: []model.CountyResult{{
		County:         "Sangamon",
		DepartmentName: "Public Health",
		Population:     "196343",
		URL:            "https://example.org/sangamon",
		Resources:      resources,
	}}}
}

func newTransformer(onMalformed string, opts ...Option) *Transformer {
	cfg := config.Default()
	cfg.OnMalformed = onMalformed
	return New(zerolog.Nop(), &cfg, opts...)
}

func TestTransform_Dispatch(t *testing.T) {
	doc := rawDoc(
		model.RawResource{Type: model.TypePhoneNumber, Value: "217-555-0100", Tags: []string{"main"}},
		model.RawResource{Type: model.TypeFacilityName, Value: "  Health Center  ", Tags: []string{"clinic"}},
		model.RawResource{Type: model.TypeAddress, Value: "2 W Jefferson Street Springfield IL 62702"},
		model.RawResource{Type: model.TypeAddress, Value: "call for directions"},
		model.RawResource{Type: "email", Value: "a@example.org"},
	)

	out, stats, err := newTransformer(config.OnMalformedAbort).Transform(doc)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(out.CountyResources) != 1 {
		t.Fatalf("expected 1 county, got %d", len(out.CountyResources))
	}
	cr := out.CountyResources[0]
	if cr.Link != "https://example.org/sangamon" || cr.Population != "196343" {
		t.Errorf("county fields not carried over: %+v", cr)
	}
	if len(cr.PhoneNumbers) != 1 || cr.PhoneNumbers[0].Number != "(217) 555 0100" {
		t.Errorf("unexpected phone numbers: %+v", cr.PhoneNumbers)
	}
	if len(cr.FacilityNames) != 1 || cr.FacilityNames[0].Name != "  Health Center  " {
		t.Errorf("facility name must pass through unmodified: %+v", cr.FacilityNames)
	}
	if len(cr.Addresses) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(cr.Addresses))
	}
	if cr.Addresses[0].Address != "2 W Jefferson Street  Springfield, IL 62702" {
		t.Errorf("unexpected address: %q", cr.Addresses[0].Address)
	}
	if cr.Addresses[1].Address != normalize.Unknown {
		t.Errorf("expected Unknown, got %q", cr.Addresses[1].Address)
	}
	if cr.Addresses[0].Tags == nil {
		t.Error("missing tags should become an empty list")
	}
	if stats.UnknownAddresses != 1 || stats.SkippedByType["email"] != 1 || stats.Counties != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestTransform_EmptyTypeIgnored(t *testing.T) {
	doc := rawDoc(model.RawResource{Type: "", Value: "217-555-0100"})
	doc.Results[0].Population = ""

	out, stats, err := newTransformer(config.OnMalformedAbort).Transform(doc)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	cr := out.CountyResources[0]
	if len(cr.PhoneNumbers) != 0 || stats.SkippedByType[""] != 1 {
		t.Errorf("empty type should be skipped: %+v %+v", cr, stats)
	}
	if cr.Population != "" {
		t.Errorf("null population should pass through, got %q", cr.Population)
	}
}

func TestTransform_EmptyListsNotNil(t *testing.T) {
	out, _, err := newTransformer(config.OnMalformedAbort).Transform(rawDoc())
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	cr := out.CountyResources[0]
	if cr.PhoneNumbers == nil || cr.FacilityNames == nil || cr.Addresses == nil {
		t.Errorf("resource lists must be non-nil: %+v", cr)
	}
}

func TestTransform_AbortOnMalformed(t *testing.T) {
	doc := rawDoc(
		model.RawResource{Type: model.TypePhoneNumber, Value: "217-555-0100"},
		model.RawResource{Type: model.TypePhoneNumber, Value: "call 911"},
	)

	_, _, err := newTransformer(config.OnMalformedAbort).Transform(doc)
	if err == nil {
		t.Fatal("expected error")
	}
	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected *RecordError, got %T", err)
	}
	if recErr.County != "Sangamon" || recErr.Index != 1 || recErr.Type != model.TypePhoneNumber {
		t.Errorf("unexpected record error: %+v", recErr)
	}
	if !errors.Is(err, normalize.ErrMalformedInput) {
		t.Errorf("record error should wrap ErrMalformedInput: %v", err)
	}
}

func TestTransform_SkipMalformed(t *testing.T) {
	doc := rawDoc(
		model.RawResource{Type: model.TypePhoneNumber, Value: "call 911"},
		model.RawResource{Type: model.TypeAddress, Value: "12 Oak Lane Springfield"},
		model.RawResource{Type: model.TypePhoneNumber, Value: "217-555-0100"},
	)

	out, stats, err := newTransformer(config.OnMalformedSkip).Transform(doc)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if stats.Malformed != 2 {
		t.Errorf("Malformed = %d, want 2", stats.Malformed)
	}
	cr := out.CountyResources[0]
	if len(cr.PhoneNumbers) != 1 || len(cr.Addresses) != 0 {
		t.Errorf("unexpected output: %+v", cr)
	}
}

func TestTransform_SkipDoesNotHideOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	tr := newTransformer(config.OnMalformedSkip, WithPhoneNormalizer(func(string) (string, error) {
		return "", boom
	}))

	_, _, err := tr.Transform(rawDoc(model.RawResource{Type: model.TypePhoneNumber, Value: "217-555-0100"}))
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

type upperParser struct{}

func (upperParser) Parse(raw string) (string, error) { return "PARSED " + raw, nil }

func TestTransform_CustomAddressParser(t *testing.T) {
	tr := newTransformer(config.OnMalformedAbort, WithAddressParser(upperParser{}))
	out, _, err := tr.Transform(rawDoc(model.RawResource{Type: model.TypeAddress, Value: "x"}))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got := out.CountyResources[0].Addresses[0].Address; got != "PARSED x" {
		t.Errorf("got %q", got)
	}
}

func TestTransform_ResourceTypeFilter(t *testing.T) {
	cfg := config.Default()
	cfg.ResourceTypes = []string{model.TypeAddress}
	tr := New(zerolog.Nop(), &cfg)

	out, stats, err := tr.Transform(rawDoc(
		model.RawResource{Type: model.TypePhoneNumber, Value: "not even a phone"},
		model.RawResource{Type: model.TypeAddress, Value: "nowhere"},
	))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	cr := out.CountyResources[0]
	if len(cr.PhoneNumbers) != 0 || len(cr.Addresses) != 1 {
		t.Errorf("unexpected output: %+v", cr)
	}
	if stats.SkippedByType[model.TypePhoneNumber] != 1 {
		t.Errorf("unexpected skipped counts: %v", stats.SkippedByType)
	}
}
