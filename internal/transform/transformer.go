package transform

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gyeh/civicres/internal/config"
	"github.com/gyeh/civicres/internal/model"
	"github.com/gyeh/civicres/internal/normalize"
)

// AddressParser turns a raw address into its canonical form.
type AddressParser interface {
	Parse(raw string) (string, error)
}

// RecordError locates a resource that could not be normalized.
type RecordError struct {
	County string
	Index  int
	Type   string
	Value  string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("county %q resource %d (%s %q): %s", e.County, e.Index, e.Type, e.Value, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Stats counts what a Transform call produced and dropped.
type Stats struct {
	Counties         int
	PhoneNumbers     int
	FacilityNames    int
	Addresses        int
	UnknownAddresses int
	Malformed        int
	SkippedByType    map[string]int
}

// Transformer dispatches raw resources to their normalizers.
type Transformer struct {
	log         zerolog.Logger
	phone       func(string) (string, error)
	address     AddressParser
	onMalformed string
	emits       func(string) bool
}

// Option customizes a Transformer.
type Option func(*Transformer)

// WithAddressParser replaces the default address parser.
func WithAddressParser(p AddressParser) Option {
	return func(t *Transformer) { t.address = p }
}

// WithPhoneNormalizer replaces the default phone normalizer.
func WithPhoneNormalizer(fn func(string) (string, error)) Option {
	return func(t *Transformer) { t.phone = fn }
}

// New builds a Transformer honoring cfg's malformed-record policy and resource type filter.
func New(log zerolog.Logger, cfg *config.Config, opts ...Option) *Transformer {
	t := &Transformer{
		log:         log,
		phone:       normalize.NormalizePhone,
		address:     normalize.NewAddressParser(),
		onMalformed: cfg.OnMalformed,
		emits:       cfg.Emits,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform cleans every county result in doc. Under the abort policy the
// first malformed resource stops the run with a *RecordError.
func (t *Transformer) Transform(doc *model.RawDocument) (*model.CleanedDocument, *Stats, error) {
	out := &model.CleanedDocument{
		CountyResources: make([]model.CountyResources, 0, len(doc.Results)),
	}
	stats := &Stats{SkippedByType: make(map[string]int)}

	for _, result := range doc.Results {
		cr := model.CountyResources{
			County:         result.County,
			DepartmentName: result.DepartmentName,
			Population:     result.Population,
			Link:           result.URL,
			PhoneNumbers:   []model.CleanedPhoneNumber{},
			FacilityNames:  []model.CleanedFacility{},
			Addresses:      []model.CleanedAddress{},
		}

		for i, res := range result.Resources {
			if err := t.apply(&cr, stats, res); err != nil {
				recErr := &RecordError{County: result.County, Index: i, Type: res.Type, Value: res.Value, Err: err}
				if t.onMalformed != config.OnMalformedSkip || !errors.Is(err, normalize.ErrMalformedInput) {
					return nil, stats, recErr
				}
				stats.Malformed++
				t.log.Warn().
					Str("county", result.County).
					Int("resource", i).
					Str("type", res.Type).
					Err(err).
					Msg("malformed resource skipped")
			}
		}

		out.CountyResources = append(out.CountyResources, cr)
		stats.Counties++
	}
	return out, stats, nil
}

func (t *Transformer) apply(cr *model.CountyResources, stats *Stats, res model.RawResource) error {
	if !t.emits(res.Type) {
		stats.SkippedByType[res.Type]++
		return nil
	}
	tags := res.Tags
	if tags == nil {
		tags = []string{}
	}

	switch res.Type {
	case model.TypePhoneNumber:
		number, err := t.phone(res.Value)
		if err != nil {
			return err
		}
		cr.PhoneNumbers = append(cr.PhoneNumbers, model.CleanedPhoneNumber{Number: number, Tags: tags})
		stats.PhoneNumbers++
	case model.TypeFacilityName:
		cr.FacilityNames = append(cr.FacilityNames, model.CleanedFacility{Name: res.Value, Tags: tags})
		stats.FacilityNames++
	case model.TypeAddress:
		address, err := t.address.Parse(res.Value)
		if err != nil {
			return err
		}
		if address == normalize.Unknown {
			stats.UnknownAddresses++
			t.log.Debug().Str("county", cr.County).Str("value", res.Value).Msg("address has no street line")
		}
		cr.Addresses = append(cr.Addresses, model.CleanedAddress{Address: address, Tags: tags})
		stats.Addresses++
	default:
		stats.SkippedByType[res.Type]++
		t.log.Debug().Str("county", cr.County).Str("type", res.Type).Msg("unknown resource type ignored")
	}
	return nil
}
