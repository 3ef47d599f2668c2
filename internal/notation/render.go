package notation

import "strings"

// Render concatenates the terms in order with no separator. It is the
// inverse of Parse for any list Parse can produce without spaces.
func Render(terms []Term) string {
	var b strings.Builder
	for _, t := range terms {
		b.WriteString(t.String())
	}
	return b.String()
}
