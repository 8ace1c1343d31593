package lyrics

import (
	"strings"
	"unicode/utf8"
)

// maxSplitIterations caps the number of split steps spent on one input line.
// Anything still over length when the cap is hit is emitted unsplit.
const maxSplitIterations = 1000

// commaRuneWindow is how far (in runes) a comma may sit from the line
// midpoint and still be considered, roughly the length of two average words.
const commaRuneWindow = 20

// splitStats records the degraded-output decisions taken while splitting one
// line, so the caller can log them without the splitter holding a logger.
type splitStats struct {
	iterations int
	forced     int
	capHit     bool
}

// ProcessLine splits one lyric line into segments of at most maxLength runes.
// Split points are chosen in priority order: around balanced parentheticals,
// after a comma near the midpoint, before a standalone "and", then at the
// space nearest the midpoint. A single token with no break opportunity is
// emitted over-length unchanged; that is the one documented exception to the
// bound. Segments come back trimmed, never empty, and always contain every
// word of the input in order.
func ProcessLine(line string, maxLength int) []string {
	segments, _ := processLine(line, maxLength)
	return segments
}

func processLine(line string, maxLength int) ([]string, splitStats) {
	var stats splitStats

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, stats
	}

	var out []string
	queue := []string{line}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == "" {
			continue
		}
		if utf8.RuneCountInString(current) <= maxLength {
			out = append(out, current)
			continue
		}
		if stats.iterations >= maxSplitIterations {
			stats.capHit = true
			out = append(out, current)
			continue
		}
		stats.iterations++

		head, tail := splitOnce(current, maxLength)
		head = strings.TrimSpace(head)
		tail = strings.TrimSpace(tail)

		// Every step must leave strictly less text to process; a step that
		// does not is emitted as-is to guarantee termination.
		if head == "" || tail == "" || head == current || tail == current {
			stats.forced++
			out = append(out, current)
			continue
		}

		queue = append([]string{head, tail}, queue...)
	}

	return out, stats
}

// splitOnce picks the single best split point for a line known to be over
// length. An empty tail means no break opportunity exists.
func splitOnce(line string, maxLength int) (string, string) {
	if head, tail, ok := splitAroundParenthetical(line); ok {
		return head, tail
	}

	r := []rune(line)
	mid := len(r) / 2

	candidate, ok := commaCandidate(r, mid, maxLength)
	if !ok {
		candidate, ok = conjunctionCandidate(r, mid, maxLength)
	}
	if !ok {
		candidate, ok = wordBoundaryCandidate(r, mid)
	}
	if !ok {
		return line, ""
	}

	return string(r[:candidate.position]), string(r[candidate.position:])
}

// splitAroundParenthetical breaks before or after a balanced parenthetical
// group rather than inside it. A group that spans the whole line is left to
// the ordinary rules, which then split within it.
func splitAroundParenthetical(line string) (string, string, bool) {
	r := []rune(line)

	start, end := -1, -1
	depth := 0
	for i, c := range r {
		switch c {
		case '(':
			if depth == 0 && start == -1 {
				start = i
			}
			depth++
		case ')':
			if depth > 0 {
				depth--
				if depth == 0 && end == -1 {
					end = i
				}
			}
		}
	}
	if start == -1 || end == -1 {
		return "", "", false
	}

	groupEnd := end + 1
	// A comma right after the closing parenthesis stays with the group.
	if groupEnd < len(r) && r[groupEnd] == ',' {
		groupEnd++
	}

	if start > 0 {
		return string(r[:start]), string(r[start:]), true
	}
	if groupEnd < len(r) {
		return string(r[:groupEnd]), string(r[groupEnd:]), true
	}
	return "", "", false
}

// commaCandidate looks for a comma within commaRuneWindow of the midpoint
// whose head segment fits maxLength. The split lands right after the comma;
// the space that followed it is dropped when the tail is trimmed.
func commaCandidate(r []rune, mid, maxLength int) (splitCandidate, bool) {
	best := splitCandidate{score: -1}
	for i, c := range r {
		if c != ',' {
			continue
		}
		score := absInt(i - mid)
		if score >= commaRuneWindow {
			continue
		}
		head := strings.TrimSpace(string(r[:i+1]))
		tail := strings.TrimSpace(string(r[i+1:]))
		if head == "" || tail == "" || utf8.RuneCountInString(head) > maxLength {
			continue
		}
		// Equidistant candidates resolve to the earlier index.
		if best.score == -1 || score < best.score {
			best = splitCandidate{position: i + 1, kind: splitComma, score: score}
		}
	}
	return best, best.score != -1
}

// conjunctionCandidate looks for a standalone "and" and splits right before
// it, keeping the conjunction at the start of the tail segment.
func conjunctionCandidate(r []rune, mid, maxLength int) (splitCandidate, bool) {
	best := splitCandidate{score: -1}
	for i := 1; i+3 < len(r); i++ {
		if r[i] != 'a' || r[i+1] != 'n' || r[i+2] != 'd' {
			continue
		}
		if r[i-1] != ' ' || r[i+3] != ' ' {
			continue
		}
		head := strings.TrimSpace(string(r[:i]))
		if head == "" || utf8.RuneCountInString(head) > maxLength {
			continue
		}
		score := absInt(i - mid)
		if best.score == -1 || score < best.score {
			best = splitCandidate{position: i, kind: splitConjunction, score: score}
		}
	}
	return best, best.score != -1
}

// wordBoundaryCandidate picks the space nearest the midpoint that leaves both
// segments non-empty. The head may still be over length; it simply goes back
// through the loop.
func wordBoundaryCandidate(r []rune, mid int) (splitCandidate, bool) {
	best := splitCandidate{score: -1}
	for i, c := range r {
		if c != ' ' {
			continue
		}
		if strings.TrimSpace(string(r[:i])) == "" || strings.TrimSpace(string(r[i+1:])) == "" {
			continue
		}
		score := absInt(i - mid)
		if best.score == -1 || score < best.score {
			best = splitCandidate{position: i, kind: splitWordBoundary, score: score}
		}
	}
	return best, best.score != -1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
