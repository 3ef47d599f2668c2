// Package span converts between term lists in duration notation and
// time.Duration values, and adapts that conversion to the serialization
// frameworks used for configuration and data files.
//
// Aggregation sums a term list into one duration. Decomposition turns a
// duration back into its canonical term list: at most one term per unit,
// coarsest first, zero terms omitted. Months and years are accepted when
// parsing but never produced by decomposition.
package span

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/papapumpkin/tempo/internal/notation"
)

// ErrOverflow is returned when a term or a sum of terms does not fit in a
// time.Duration.
var ErrOverflow = errors.New("duration overflows int64 nanoseconds")

// ErrNegative is returned when decomposing a negative duration.
var ErrNegative = errors.New("negative duration")

// ErrSubMillisecond is returned when decomposing a duration that is not a
// whole number of milliseconds.
var ErrSubMillisecond = errors.New("duration has sub-millisecond precision")

// ErrInvalidUnit is returned for a term whose unit is outside the defined set.
var ErrInvalidUnit = errors.New("invalid unit")

// FromTerm returns the duration contributed by a single term.
func FromTerm(t notation.Term) (time.Duration, error) {
	if !t.Unit.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidUnit, t.Unit)
	}
	length := int64(t.Unit.Length())
	if t.Value > math.MaxInt64/length || t.Value < math.MinInt64/length {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, t)
	}
	return time.Duration(t.Value * length), nil
}

// Aggregate sums the contributions of all terms. Terms may appear in any
// order and units may repeat.
func Aggregate(terms []notation.Term) (time.Duration, error) {
	var total time.Duration
	for _, t := range terms {
		d, err := FromTerm(t)
		if err != nil {
			return 0, err
		}
		sum := total + d
		if (d > 0 && sum < total) || (d < 0 && sum > total) {
			return 0, fmt.Errorf("%w: adding %s to %v", ErrOverflow, t, total)
		}
		total = sum
	}
	return total, nil
}
