package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// streetLine matches "<number> [<directional>] <name> <suffix>". Longer suffix
// spellings come first so "Street" is not cut short to "Str" or "St". "St" must
// end the word so "Station" or "Stone" is not read as a suffix.
var streetLine = regexp.MustCompile(`(?i)[0-9]+ ((n\.?|s\.?|e\.?|w\.?|north|south|east|west) )?[a-z]+ ` +
	`(street|str\.?|st(\.|\b)|avenue|ave\.?|road|rd\.?|boulevard|blvd\.?|drive|dr\.?|lane|ln\.?)`)

// AddressParser turns a free-form US address into "<street line>  <city, state zip>".
type AddressParser struct {
	strategies []SecondLineStrategy
}

// NewAddressParser returns a parser that tries strategies in order when
// assembling the second line. With no strategies it uses DefaultStrategies.
func NewAddressParser(strategies ...SecondLineStrategy) *AddressParser {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &AddressParser{strategies: strategies}
}

var defaultParser = NewAddressParser()

// ParseAddress parses raw with the default strategy order.
func ParseAddress(raw string) (string, error) {
	return defaultParser.Parse(raw)
}

// Parse returns the canonical two-line address, or Unknown when raw has no
// street line. A street line with no zip code after it is ErrMalformedInput.
func (p *AddressParser) Parse(raw string) (string, error) {
	raw = norm.NFC.String(raw)

	loc := streetLine.FindStringIndex(raw)
	if loc == nil {
		return Unknown, nil
	}
	street := raw[loc[0]:loc[1]]
	rest := raw[loc[1]:]

	zipLoc := digitRun.FindStringIndex(rest)
	if zipLoc == nil {
		return "", fmt.Errorf("%w: address %q has no zip code after %q", ErrMalformedInput, raw, street)
	}
	zip := rest[zipLoc[0]:zipLoc[1]]

	line := strings.TrimSpace(rest[:zipLoc[0]] + zip)
	line = strings.TrimLeftFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	for _, s := range p.strategies {
		if second, ok := s.Apply(line, zip); ok {
			return street + "  " + second, nil
		}
	}
	return "", fmt.Errorf("%w: no second-line strategy accepted %q", ErrMalformedInput, line)
}
