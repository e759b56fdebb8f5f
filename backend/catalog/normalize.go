package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AllValues is the filter value that matches every course.
const AllValues = "Todos"

// Normalize folds a category or level for comparison: accents and whitespace
// removed, lower case. "Diseño UX" and "diseno ux" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, out)
	return strings.ToLower(out)
}

func isAll(v string) bool {
	n := Normalize(v)
	return n == "" || n == Normalize(AllValues)
}
