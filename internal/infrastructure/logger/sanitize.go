package logger

import (
	"fmt"
	"strings"
)

// maxLogValue caps user-controlled values such as upload filenames.
const maxLogValue = 200

// SanitizeForLog makes a client-controlled value (upload filename, request
// path, client address) safe to put on one log line. Control characters
// are escaped so a value cannot forge log entries or drive the terminal;
// printable Unicode is kept. Values longer than maxLogValue runes are cut
// and marked with "...".
func SanitizeForLog(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	n := 0
	for _, r := range s {
		if n == maxLogValue {
			result.WriteString("...")
			break
		}
		n++
		switch r {
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		case '\x00':
			result.WriteString("\\x00")
		default:
			if r < 32 || r == 127 || r == '\x1b' {
				result.WriteString(fmt.Sprintf("\\x%02x", r))
			} else {
				result.WriteRune(r)
			}
		}
	}
	return result.String()
}
