package notation

// separator is the only character allowed between terms, at most once.
const separator = ' '

// ParseSequence parses one or more terms starting at src[pos:]. After each
// term a single space is consumed if present. Parsing stops at the first
// position where no term can be read; the terms read so far are returned with
// that position. If no term could be read, the result is a *ParseError of
// kind KindSequence whose Cause is the term failure.
//
// ParseSequence does not require the whole input to be consumed. Callers
// that do should use Parse.
func ParseSequence(src string, pos int) ([]Term, int, error) {
	var terms []Term
	for {
		term, next, err := ParseTerm(src, pos)
		if err != nil {
			if len(terms) == 0 {
				pe := newParseError(KindSequence, src, pos, ErrNoTerms)
				pe.Cause = err
				return nil, pos, pe
			}
			return terms, pos, nil
		}
		terms = append(terms, term)
		pos = next
		if pos < len(src) && src[pos] == separator {
			pos++
		}
	}
}

// Parse parses src as a complete term sequence. Any input left after the
// last term is reported as ErrTrailingInput at the first unconsumed byte.
func Parse(src string) ([]Term, error) {
	terms, next, err := ParseSequence(src, 0)
	if err != nil {
		return nil, err
	}
	if next != len(src) {
		pe := newParseError(KindSequence, src, next, ErrTrailingInput)
		// Re-run the term parser to explain why the rest was rejected.
		if _, _, cause := ParseTerm(src, next); cause != nil {
			pe.Cause = cause
		}
		return nil, pe
	}
	return terms, nil
}
