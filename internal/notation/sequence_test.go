package notation

import (
	"errors"
	"math"
	"testing"
)

func TestParseTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want Term
	}{
		{"1MS", Term{1, Milliseconds}},
		{"1ms", Term{1, Milliseconds}},
		{"1S", Term{1, Seconds}},
		{"1m", Term{1, Minutes}},
		{"1H", Term{1, Hours}},
		{"1D", Term{1, Days}},
		{"1M", Term{1, Months}},
		{"1W", Term{1, Week}},
		{"1Y", Term{1, Year}},
		{"0S", Term{0, Seconds}},
		{"007H", Term{7, Hours}},
		{"9223372036854775807MS", Term{math.MaxInt64, Milliseconds}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			got, next, err := ParseTerm(tt.src, 0)
			if err != nil {
				t.Fatalf("ParseTerm(%q): %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("ParseTerm(%q) = %+v, want %+v", tt.src, got, tt.want)
			}
			if next != len(tt.src) {
				t.Errorf("next = %d, want %d", next, len(tt.src))
			}
		})
	}
}

func TestParseTerm_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		kind     ErrorKind
		sentinel error
		pos      int
	}{
		{"empty", "", KindNumber, ErrMissingDigits, 0},
		{"no digits", "S", KindNumber, ErrMissingDigits, 0},
		{"sign", "-1S", KindNumber, ErrMissingDigits, 0},
		{"plus", "+1S", KindNumber, ErrMissingDigits, 0},
		{"digits without unit", "12", KindLex, ErrUnknownUnit, 2},
		{"space before unit", "1 S", KindLex, ErrUnknownUnit, 1},
		{"bad unit", "5x", KindLex, ErrUnknownUnit, 1},
		{"overflow", "9223372036854775808S", KindNumber, ErrNumberRange, 0},
		{"huge", "99999999999999999999999999H", KindNumber, ErrNumberRange, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, next, err := ParseTerm(tt.src, 0)
			if err == nil {
				t.Fatalf("ParseTerm(%q) = %+v, expected error", tt.src, got)
			}
			if got != (Term{}) {
				t.Errorf("partial term returned: %+v", got)
			}
			if next != 0 {
				t.Errorf("next = %d, want 0 (nothing consumed)", next)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v does not wrap %v", err, tt.sentinel)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not *ParseError", err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", pe.Kind, tt.kind)
			}
			if pe.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", pe.Pos, tt.pos)
			}
		})
	}
}

func TestParseTerm_OutOfRangePosition(t *testing.T) {
	t.Parallel()

	for _, pos := range []int{-1, -10, 3, 100} {
		term, next, err := ParseTerm("1S", pos)
		if !errors.Is(err, ErrMissingDigits) {
			t.Errorf("ParseTerm(%q, %d) error = %v, want ErrMissingDigits", "1S", pos, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindNumber || pe.Pos != pos {
			t.Errorf("ParseTerm(%q, %d) error = %#v, want KindNumber at %d", "1S", pos, err, pos)
		}
		if term != (Term{}) || next != pos {
			t.Errorf("ParseTerm(%q, %d) = %+v, %d; want zero term, %d", "1S", pos, term, next, pos)
		}

		terms, next, err := ParseSequence("1S", pos)
		if !errors.Is(err, ErrNoTerms) || !errors.Is(err, ErrMissingDigits) {
			t.Errorf("ParseSequence(%q, %d) error = %v, want ErrNoTerms caused by ErrMissingDigits", "1S", pos, err)
		}
		if terms != nil || next != pos {
			t.Errorf("ParseSequence(%q, %d) = %v, %d", "1S", pos, terms, next)
		}
	}
}

func TestParseSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []Term
		next int
	}{
		{
			name: "single",
			src:  "1MS",
			want: []Term{{1, Milliseconds}},
			next: 3,
		},
		{
			name: "no separators",
			src:  "1ms2S3H",
			want: []Term{{1, Milliseconds}, {2, Seconds}, {3, Hours}},
			next: 7,
		},
		{
			name: "single space",
			src:  "1MS 2S",
			want: []Term{{1, Milliseconds}, {2, Seconds}},
			next: 6,
		},
		{
			name: "mixed separators",
			src:  "4W 2D3H 10m",
			want: []Term{{4, Week}, {2, Days}, {3, Hours}, {10, Minutes}},
			next: 11,
		},
		{
			name: "duplicate units kept",
			src:  "1S1S",
			want: []Term{{1, Seconds}, {1, Seconds}},
			next: 4,
		},
		{
			name: "double space stops after first space",
			src:  "1MS  2S",
			want: []Term{{1, Milliseconds}},
			next: 4,
		},
		{
			name: "trailing garbage left unconsumed",
			src:  "5m!",
			want: []Term{{5, Minutes}},
			next: 2,
		},
		{
			name: "trailing single space consumed",
			src:  "5m ",
			want: []Term{{5, Minutes}},
			next: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, next, err := ParseSequence(tt.src, 0)
			if err != nil {
				t.Fatalf("ParseSequence(%q): %v", tt.src, err)
			}
			if !equalTerms(got, tt.want) {
				t.Errorf("ParseSequence(%q) = %v, want %v", tt.src, got, tt.want)
			}
			if next != tt.next {
				t.Errorf("next = %d, want %d", next, tt.next)
			}
		})
	}
}

func TestParseSequence_NoTerms(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", " 1S", "S", "abc"} {
		terms, next, err := ParseSequence(src, 0)
		if err == nil {
			t.Errorf("ParseSequence(%q) = %v, expected error", src, terms)
			continue
		}
		if terms != nil || next != 0 {
			t.Errorf("ParseSequence(%q) returned (%v, %d) alongside error", src, terms, next)
		}
		if !errors.Is(err, ErrNoTerms) {
			t.Errorf("ParseSequence(%q) error %v does not wrap ErrNoTerms", src, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindSequence {
			t.Errorf("ParseSequence(%q) error %v is not a sequence ParseError", src, err)
		}
		if pe != nil && pe.Cause == nil {
			t.Errorf("ParseSequence(%q) error has no cause", src)
		}
	}
}

func TestParse_FullString(t *testing.T) {
	t.Parallel()

	got, err := Parse("1ms2S3H")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Term{{1, Milliseconds}, {2, Seconds}, {3, Hours}}
	if !equalTerms(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_RejectsTrailingInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src string
		pos int
	}{
		{"1MS  2S", 4},
		{"1S,2S", 2},
		{"3H x", 3},
		{"1S\t2S", 2},
		{"1S2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			terms, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, expected error", tt.src, terms)
			}
			if !errors.Is(err, ErrTrailingInput) {
				t.Errorf("error %v does not wrap ErrTrailingInput", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not *ParseError", err)
			}
			if pe.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", pe.Pos, tt.pos)
			}
			if pe.Kind != KindSequence {
				t.Errorf("Kind = %s, want sequence", pe.Kind)
			}
		})
	}
}

func TestParse_OverflowIsReported(t *testing.T) {
	t.Parallel()

	_, err := Parse("1S99999999999999999999MS")
	if err == nil {
		t.Fatal("expected error for oversized digit run")
	}
	if !errors.Is(err, ErrTrailingInput) || !errors.Is(err, ErrNumberRange) {
		t.Errorf("error %v should wrap both ErrTrailingInput and ErrNumberRange", err)
	}
}

func TestParseError_Message(t *testing.T) {
	t.Parallel()

	_, err := Parse("2x")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `no terms at offset 0 in "2x": unknown unit at offset 1 in "2x"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		terms []Term
		want  string
	}{
		{nil, ""},
		{[]Term{{3, Hours}, {2, Seconds}, {1, Milliseconds}}, "3H2S1MS"},
		{[]Term{{4, Week}, {2, Days}}, "4W2D"},
		{[]Term{{1, Months}, {5, Minutes}}, "1M5m"},
		{[]Term{{-2, Seconds}}, "-2S"},
	}
	for _, tt := range tests {
		if got := Render(tt.terms); got != tt.want {
			t.Errorf("Render(%v) = %q, want %q", tt.terms, got, tt.want)
		}
	}
}

func TestRender_ReparsesToSameTerms(t *testing.T) {
	t.Parallel()

	for _, u := range Units() {
		for _, v := range []int64{0, 1, 59, 1000, math.MaxInt64} {
			terms := []Term{{v, u}, {v, Seconds}}
			text := Render(terms)
			got, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(Render(%v)) = %v", terms, err)
			}
			if !equalTerms(got, terms) {
				t.Errorf("Parse(%q) = %v, want %v", text, got, terms)
			}
		}
	}
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	for kind, want := range map[ErrorKind]string{
		KindLex:       "lex",
		KindNumber:    "number",
		KindSequence:  "sequence",
		ErrorKind(99): "kind(99)",
	} {
		if kind.String() != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(kind), kind.String(), want)
		}
	}
}

func equalTerms(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func BenchmarkParse(b *testing.B) {
	const src = "1Y2M3W4D5H6m7S890MS"
	for b.Loop() {
		if _, err := Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}
