package extract

import "strings"

// Clean collapses every run of whitespace to a single space and trims both
// ends. Idempotent: Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeLabel turns a table-row label like "Amount:" or "  Date & Time : "
// into a uniform lowercase key with no trailing colon, so labels compare
// equal regardless of spacing, case, or punctuation.
func NormalizeLabel(s string) string {
	s = Clean(s)
	s = strings.TrimRight(s, ":")
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}
