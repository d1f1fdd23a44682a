// Package isbn canonicalizes ISBN-like strings so that values from different
// sources can be compared directly. Hyphens, spaces and case differences are
// common across catalogs, so two raw strings that normalize to the same value
// are treated as the same identity when joining.
package isbn

import "strings"

// Normalize strips every character that is not a decimal digit or the checksum
// letter X and upper-cases the result. It performs no checksum or length
// validation; deciding whether a normalized value is usable as a join key is
// the caller's responsibility. Normalize is idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'X' || r == 'x':
			b.WriteByte('X')
		}
	}
	return b.String()
}

// Pick returns the normalized form of the first candidate whose normalized
// length matches length, or an empty string if none does.
func Pick(candidates []string, length int) string {
	for _, c := range candidates {
		if n := Normalize(c); len(n) == length {
			return n
		}
	}
	return ""
}
