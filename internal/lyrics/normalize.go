package lyrics

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// normalizeRunes folds every Unicode space variant (non-breaking space,
// em-space, thin space, tab, ...) into a plain ASCII space, then drops
// control and other non-printable runes. Newlines survive; carriage returns
// do not, so CRLF input collapses to LF.
var normalizeRunes = transform.Chain(
	runes.Map(func(r rune) rune {
		if r == '\t' || unicode.Is(unicode.Zs, r) {
			return ' '
		}
		return r
	}),
	runes.Remove(runes.Predicate(func(r rune) bool {
		return r != '\n' && r != ' ' && !unicode.IsPrint(r)
	})),
)

var (
	// 3+ consecutive newlines become exactly 2, preserving single blank-line
	// paragraph breaks
	excessiveNewlinesRegex = regexp.MustCompile(`\n{3,}`)

	// whitespace sitting before punctuation is an artifact of chord stripping
	// and OCR'd lyric sheets
	spaceBeforePunctRegex = regexp.MustCompile(` +([,.!?])`)

	spaceRunRegex = regexp.MustCompile(` {2,}`)

	// a comma glued to the next word gets its space back
	missingSpaceAfterCommaRegex = regexp.MustCompile(`,(\S)`)
)

// Normalize cleans raw lyric text: strips non-printable characters, folds
// Unicode space variants to ASCII spaces, trims line edges, fixes spacing
// around punctuation and collapses runs of blank lines. Pure and total; an
// empty input returns an empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned, _, _ := transform.String(normalizeRunes, raw)

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = spaceRunRegex.ReplaceAllString(line, " ")
		line = spaceBeforePunctRegex.ReplaceAllString(line, "$1")
		line = missingSpaceAfterCommaRegex.ReplaceAllString(line, ", $1")
		lines[i] = line
	}

	return excessiveNewlinesRegex.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}
