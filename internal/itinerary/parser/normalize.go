package parser

import (
	"regexp"
	"strings"
)

var (
	keycapRe       = regexp.MustCompile(`[0-9#*]\x{FE0F}?\x{20E3}`)
	listNumberRe   = regexp.MustCompile(`^\(?\d{1,2}[.)]\s+`)
	headingMarkRe  = regexp.MustCompile(`^#{1,6}\s+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	leadingMarkers = "•·▪◦‣●○■□-–—*>+"
)

// cleanLine strips emoji, list markup and surrounding decoration from a line
// while keeping the original letter case.
func cleanLine(line string) string {
	s := stripEmoji(line)
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))

	for {
		before := s
		s = strings.TrimLeft(s, leadingMarkers)
		s = strings.TrimSpace(s)
		s = headingMarkRe.ReplaceAllString(s, "")
		s = listNumberRe.ReplaceAllString(s, "")
		if s == before {
			break
		}
	}

	s = strings.TrimRight(s, "*_ ")
	s = strings.TrimLeft(s, "_ ")
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}

// normalizeKey lowercases and collapses whitespace for comparisons.
func normalizeKey(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	return strings.ToLower(strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " ")))
}

func stripEmoji(s string) string {
	s = keycapRe.ReplaceAllString(s, "")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isEmojiRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isEmojiRune(r rune) bool {
	switch {
	case r == '\u200d', r == '\u20e3': // zero-width joiner, keycap
		return true
	case r >= 0xfe00 && r <= 0xfe0f: // variation selectors
		return true
	case r >= 0x1f3fb && r <= 0x1f3ff: // skin tones
		return true
	case r >= 0x1f1e6 && r <= 0x1f1ff: // regional indicators
		return true
	case r >= 0xe0020 && r <= 0xe007f: // tag sequences
		return true
	case r >= 0x1f000 && r <= 0x1faff: // pictographs, emoticons, transport, symbols ext
		return true
	case r >= 0x2600 && r <= 0x27bf: // misc symbols, dingbats
		return true
	case r >= 0x2b05 && r <= 0x2b55: // arrows, stars, circles
		return true
	case r == 0x231a, r == 0x231b, r >= 0x23e9 && r <= 0x23fa: // watch, hourglass, media
		return true
	case r == 0x3030, r == 0x303d, r == 0x3297, r == 0x3299:
		return true
	}
	return false
}
