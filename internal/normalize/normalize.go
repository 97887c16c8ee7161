package normalize

import "errors"

// ErrMalformedInput is returned when a raw value lacks the pieces needed to
// build its canonical form (too few phone groups, no zip code).
var ErrMalformedInput = errors.New("malformed input")

// Unknown is the canonical value for an address with no recognizable street line.
const Unknown = "Unknown"
