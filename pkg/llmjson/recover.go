// Package llmjson recovers JSON objects from free-text model responses.
package llmjson

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// JSONRecoveryError is returned when no recovery strategy yields valid JSON.
// Err is the error from parsing the unmodified input.
type JSONRecoveryError struct {
	Err error
}

func (e *JSONRecoveryError) Error() string {
	return fmt.Sprintf("llmjson: response is not recoverable JSON: %v", e.Err)
}

func (e *JSONRecoveryError) Unwrap() error {
	return e.Err
}

var (
	trailingDotNumberRe = regexp.MustCompile(`([0-9])\.(\s*[,}\]"])`)
	trailingDotQuoteRe  = regexp.MustCompile(`"\s*\.(\s*[,}\]])`)
	trailingCommaRe     = regexp.MustCompile(`,(\s*[}\]])`)
)

// Parse decodes raw into T, trying progressively more aggressive repairs:
//  1. raw as is
//  2. the span from the first '{' to the last '}'
//  3. that span with raw control characters inside strings escaped
//  4. that span with stray '.' tokens and trailing commas removed
//
// Later layers can corrupt valid JSON, so the order matters.
func Parse[T any](raw string) (T, error) {
	var zero T

	var out T
	origErr := json.Unmarshal([]byte(raw), &out)
	if origErr == nil {
		return out, nil
	}

	sliced, ok := sliceObject(raw)
	if !ok {
		return zero, &JSONRecoveryError{Err: origErr}
	}

	escaped := escapeControlChars(sliced)
	for _, candidate := range []string{sliced, escaped, repairTokens(escaped)} {
		var v T
		if err := json.Unmarshal([]byte(candidate), &v); err == nil {
			return v, nil
		}
	}

	return zero, &JSONRecoveryError{Err: origErr}
}

func sliceObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// escapeControlChars escapes newlines, carriage returns, tabs and other
// control characters that appear inside string literals.
func escapeControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
			b.WriteByte(c)
		case c == '"':
			inString = !inString
			b.WriteByte(c)
		case inString && c == '\n':
			b.WriteString(`\n`)
		case inString && c == '\r':
			b.WriteString(`\r`)
		case inString && c == '\t':
			b.WriteString(`\t`)
		case inString && c < 0x20:
			fmt.Fprintf(&b, `\u%04x`, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func repairTokens(s string) string {
	s = trailingDotNumberRe.ReplaceAllString(s, "$1$2")
	s = trailingDotQuoteRe.ReplaceAllString(s, `"$1`)
	return trailingCommaRe.ReplaceAllString(s, "$1")
}
