package extract

import (
	"encoding/json"
	"strings"
)

// FirstJSONObject locates the first complete brace-delimited JSON object in
// the text, tracking brace depth and string escapes so nested objects stay
// inside one span and a second object in the same reply is ignored. A
// balanced span that fails json.Valid is skipped and the scan resumes at
// the next opening brace.
func FirstJSONObject(input string) string {
	offset := 0
	for {
		start := strings.Index(input[offset:], "{")
		if start == -1 {
			return ""
		}
		start += offset

		depth := 0
		inString := false
		escaped := false
		closed := -1

	scan:
		for i := start; i < len(input); i++ {
			char := input[i]

			if inString {
				if escaped {
					escaped = false
				} else if char == '\\' {
					escaped = true
				} else if char == '"' {
					inString = false
				}
				continue
			}

			switch char {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					closed = i
					break scan
				}
			}
		}

		if closed == -1 {
			// Unterminated at this start; an inner object may still balance.
			offset = start + 1
			continue
		}
		candidate := input[start : closed+1]
		if json.Valid([]byte(candidate)) {
			return candidate
		}
		offset = start + 1
	}
}
