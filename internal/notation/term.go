package notation

import (
	"errors"
	"strconv"
)

// Term is a single (value, unit) pair such as 3H. The parser only produces
// non-negative values, but arithmetic on terms may yield negative ones.
type Term struct {
	Value int64
	Unit  Unit
}

// String renders the term as <value><canonical unit spelling>.
func (t Term) String() string {
	return strconv.FormatInt(t.Value, 10) + t.Unit.String()
}

// ParseTerm parses a digit run followed immediately by a unit token,
// starting at src[pos:]. It returns the term and the position just past the
// unit token. No partial term is returned on failure.
func ParseTerm(src string, pos int) (Term, int, error) {
	if pos < 0 || pos > len(src) {
		return Term{}, pos, newParseError(KindNumber, src, pos, ErrMissingDigits)
	}
	end := pos
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	if end == pos {
		return Term{}, pos, newParseError(KindNumber, src, pos, ErrMissingDigits)
	}

	value, err := strconv.ParseInt(src[pos:end], 10, 64)
	if err != nil {
		pe := newParseError(KindNumber, src, pos, ErrNumberRange)
		if !errors.Is(err, strconv.ErrRange) {
			pe.Cause = err
		}
		return Term{}, pos, pe
	}

	unit, next, err := LexUnit(src, end)
	if err != nil {
		return Term{}, pos, err
	}
	return Term{Value: value, Unit: unit}, next, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
