// Package sanitize escapes user provided strings for logging.
package sanitize

import (
	"strings"
)

// Log returns a string that is safe to use in log messages.
func Log(s string) string {
	if s == "" {
		return "''"
	}

	s = strings.Map(func(r rune) rune {
		switch r {
		case '`', '"', '\'', '\n', '\r', '\t':
			return '?'
		default:
			return r
		}
	}, s)

	return "'" + s + "'"
}
