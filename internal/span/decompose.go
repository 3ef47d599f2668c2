package span

import (
	"fmt"
	"time"

	"github.com/papapumpkin/tempo/internal/notation"
)

// ladder is the order in which decomposition extracts units. Months and Year
// are absent on purpose; a 30-day duration decomposes to 4W2D.
var ladder = [...]notation.Unit{
	notation.Week,
	notation.Days,
	notation.Hours,
	notation.Minutes,
	notation.Seconds,
	notation.Milliseconds,
}

// Decompose returns the canonical term list for d: the whole count of each
// unit on the ladder, coarsest first, omitting units that contribute
// nothing. The zero duration yields an empty list.
//
// d must be non-negative and a whole number of milliseconds.
func Decompose(d time.Duration) ([]notation.Term, error) {
	if d < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegative, d)
	}
	if d%time.Millisecond != 0 {
		return nil, fmt.Errorf("%w: %v", ErrSubMillisecond, d)
	}

	terms := make([]notation.Term, 0, len(ladder))
	rem := d
	for _, u := range ladder {
		n := rem / u.Length()
		if n > 0 {
			terms = append(terms, notation.Term{Value: int64(n), Unit: u})
			rem -= n * u.Length()
		}
	}
	if rem != 0 {
		panic(fmt.Sprintf("span: decomposing %v left remainder %v", d, rem))
	}
	return terms, nil
}
