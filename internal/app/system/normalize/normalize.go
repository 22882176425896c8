// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email lowercases and trims an email address so lookups are
// case-insensitive. An empty result means the input was unusable.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name collapses surrounding whitespace in a display name.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
