package match

import (
	"strings"
	"unicode"
)

// Fold normalizes a field name for loose matching: it case-folds to lower
// and strips the separators '_', '-' and ' ', so "post_date", "postDate"
// and "Post-Date" all fold to "postdate".
func Fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
