// Package notation implements the compact duration notation: a sequence of
// terms such as "1ms2S3H", each term a decimal integer followed by a unit
// token. It lexes unit tokens, parses terms and term sequences, and renders
// term lists back to text. Conversion to and from time.Duration lives in
// package span.
package notation

import (
	"fmt"
	"strings"
	"time"
)

// Unit is one of the eight time granularities of the notation.
// Values are ordered from finest (Milliseconds) to coarsest (Year).
type Unit uint8

const (
	Milliseconds Unit = iota // MS or ms
	Seconds                  // S
	Minutes                  // m
	Hours                    // H
	Days                     // D
	Week                     // W, 7 days
	Months                   // M, 30 days
	Year                     // Y, 365 days
)

// Day is the fixed length of one day. Week, Months and Year are whole
// multiples of it; no calendar arithmetic is involved.
const Day = 24 * time.Hour

type unitInfo struct {
	name      string
	canonical string
	length    time.Duration
}

var unitTable = [...]unitInfo{
	Milliseconds: {"Milliseconds", "MS", time.Millisecond},
	Seconds:      {"Seconds", "S", time.Second},
	Minutes:      {"Minutes", "m", time.Minute},
	Hours:        {"Hours", "H", time.Hour},
	Days:         {"Days", "D", Day},
	Week:         {"Week", "W", 7 * Day},
	Months:       {"Months", "M", 30 * Day},
	Year:         {"Year", "Y", 365 * Day},
}

// spellings lists every accepted input token. Two-character tokens come
// first so "MS" is never lexed as Months followed by Seconds.
var spellings = []struct {
	token string
	unit  Unit
}{
	{"MS", Milliseconds},
	{"ms", Milliseconds},
	{"S", Seconds},
	{"m", Minutes},
	{"H", Hours},
	{"D", Days},
	{"W", Week},
	{"M", Months},
	{"Y", Year},
}

// Units returns all units, coarsest first.
func Units() []Unit {
	return []Unit{Year, Months, Week, Days, Hours, Minutes, Seconds, Milliseconds}
}

// Valid reports whether u is one of the eight defined units.
func (u Unit) Valid() bool {
	return int(u) < len(unitTable)
}

// String returns the canonical spelling used when rendering.
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitTable[u].canonical
}

// Name returns the long name of the unit, e.g. "Milliseconds".
func (u Unit) Name() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitTable[u].name
}

// Length returns the fixed duration of one unit. Months are 30 days and
// years 365 days.
func (u Unit) Length() time.Duration {
	if !u.Valid() {
		return 0
	}
	return unitTable[u].length
}

// Coarser reports whether u is strictly longer than other.
func (u Unit) Coarser(other Unit) bool {
	return u.Length() > other.Length()
}

// Spellings returns the tokens accepted for u when parsing.
func (u Unit) Spellings() []string {
	var out []string
	for _, s := range spellings {
		if s.unit == u {
			out = append(out, s.token)
		}
	}
	return out
}

// LexUnit matches a unit token at src[pos:]. On success it returns the unit
// and the position just past the token. On failure it returns a *ParseError
// of kind KindLex at pos and consumes nothing.
func LexUnit(src string, pos int) (Unit, int, error) {
	if pos >= 0 && pos <= len(src) {
		rest := src[pos:]
		for _, s := range spellings {
			if strings.HasPrefix(rest, s.token) {
				return s.unit, pos + len(s.token), nil
			}
		}
	}
	return 0, pos, newParseError(KindLex, src, pos, ErrUnknownUnit)
}

// ParseUnit parses s as exactly one unit token.
func ParseUnit(s string) (Unit, error) {
	u, next, err := LexUnit(s, 0)
	if err != nil {
		return 0, err
	}
	if next != len(s) {
		return 0, newParseError(KindSequence, s, next, ErrTrailingInput)
	}
	return u, nil
}
