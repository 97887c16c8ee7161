package normalize

import (
	"fmt"
	"regexp"
)

// digitRun finds zip codes. phoneGroup accepts any Unicode decimal digit.
var (
	digitRun   = regexp.MustCompile(`[0-9]+`)
	phoneGroup = regexp.MustCompile(`\p{Nd}+`)
)

// NormalizePhone renders the first three digit runs of raw as "(AAA) BBB CCCC".
// Runs past the third (extensions) are dropped; run lengths are not checked.
func NormalizePhone(raw string) (string, error) {
	groups := phoneGroup.FindAllString(raw, 3)
	if len(groups) < 3 {
		return "", fmt.Errorf("%w: phone %q has %d numeric groups, need 3", ErrMalformedInput, raw, len(groups))
	}
	return "(" + groups[0] + ") " + groups[1] + " " + groups[2], nil
}
