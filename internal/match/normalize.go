package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a C++ name for fuzzy comparison: scope separators,
// underscores and blanks are dropped and letters lower-cased, so
// "Shape::Kind", "shape_kind" and "ShapeKind" compare equal.
func NormalizeName(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if r == ':' || r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// LastSegment returns the unqualified part of a scoped name ("Kind" for "Shape::Kind").
func LastSegment(s string) string {
	if i := strings.LastIndex(s, "::"); i >= 0 {
		return s[i+2:]
	}

	return s
}
