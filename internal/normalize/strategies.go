package normalize

import (
	"strings"
	"unicode"
)

// SecondLineStrategy assembles "city, state zip" from the text that follows a
// street line. line always ends with zip. ok is false when the strategy does
// not apply and the next one should be tried.
type SecondLineStrategy interface {
	Name() string
	Apply(line, zip string) (second string, ok bool)
}

// DefaultStrategies returns SpaceDelimited followed by Segmented.
func DefaultStrategies() []SecondLineStrategy {
	return []SecondLineStrategy{SpaceDelimited{}, Segmented{}}
}

// SpaceDelimited handles lines with at least three whitespace tokens, such as
// "Springfield IL 62704": last token is the zip, the one before it the state,
// and everything earlier the city.
type SpaceDelimited struct{}

func (SpaceDelimited) Name() string { return "space_delimited" }

func (SpaceDelimited) Apply(line, _ string) (string, bool) {
	tokens := strings.Fields(line)
	n := len(tokens)
	if n < 3 {
		return "", false
	}
	city := strings.Join(tokens[:n-2], " ")
	if !strings.HasSuffix(city, ",") {
		city += ","
	}
	return city + " " + tokens[n-2] + " " + tokens[n-1], true
}

// Segmented is the fallback for fused or comma-delimited lines such as
// "NewYork,NY 10001". The first comma segment is the city, the last the state.
// Without a comma both are the same fused segment.
type Segmented struct{}

func (Segmented) Name() string { return "segmented" }

func (Segmented) Apply(line, zip string) (string, bool) {
	head := line
	if i := strings.Index(line, zip); i >= 0 {
		head = line[:i]
	}
	segments := strings.Split(head, ",")
	state := strings.TrimSpace(segments[len(segments)-1])
	city := SplitFusedWords(strings.TrimSpace(segments[0]))

	parts := make([]string, 0, 3)
	for _, p := range []string{city, state, zip} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " "), true
}

// SplitFusedWords inserts a space before every uppercase letter that directly
// follows a non-space character: "NewYork" becomes "New York".
func SplitFusedWords(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	prev := ' '
	for _, r := range s {
		if unicode.IsUpper(r) && !unicode.IsSpace(prev) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
