// Package search prepares user-supplied search text for SQL pattern matching.
package search

import "strings"

const escapeChar = `\`

// ContainsPattern turns raw search text into a case-insensitive "contains"
// pattern for ILIKE. Leading/trailing whitespace is trimmed and the pattern
// metacharacters % and _ are escaped with a backslash so they match
// literally. Queries using the result must carry an ESCAPE '\' clause.
//
// Empty input produces "%%", which matches every row.
func ContainsPattern(raw string) string {
	return "%" + Escape(strings.TrimSpace(raw)) + "%"
}

// Escape prefixes every pattern metacharacter in s with the escape marker.
// The marker itself is escaped first so user backslashes stay literal.
func Escape(s string) string {
	s = strings.ReplaceAll(s, escapeChar, escapeChar+escapeChar)
	s = strings.ReplaceAll(s, "%", escapeChar+"%")
	s = strings.ReplaceAll(s, "_", escapeChar+"_")
	return s
}
