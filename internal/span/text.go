package span

import (
	"fmt"
	"time"

	"github.com/papapumpkin/tempo/internal/notation"
)

// Format renders d in canonical notation, e.g. 3H2S1MS. The zero duration
// renders as the empty string.
func Format(d time.Duration) (string, error) {
	terms, err := Decompose(d)
	if err != nil {
		return "", err
	}
	return notation.Render(terms), nil
}

// MustFormat is like Format but panics if d cannot be rendered. Use it only
// for durations known to be non-negative whole milliseconds.
func MustFormat(d time.Duration) string {
	s, err := Format(d)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse parses the whole of s as a term sequence and returns its sum. The
// empty string is the rendering of the zero duration and parses to zero.
func Parse(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	terms, err := notation.Parse(s)
	if err != nil {
		return 0, err
	}
	d, err := Aggregate(terms)
	if err != nil {
		return 0, fmt.Errorf("aggregating %q: %w", s, err)
	}
	return d, nil
}
