package lyrics

import (
	"time"
)

// DefaultMaxLineLength is the line length karaoke subtitle templates are
// usually authored for.
const DefaultMaxLineLength = 36

// Config holds configuration for one processing run
type Config struct {
	MaxLineLength int  `json:"max_line_length"`
	Debug         bool `json:"debug"`
}

// DefaultConfig returns the configuration used when the caller specifies
// nothing.
func DefaultConfig() Config {
	return Config{
		MaxLineLength: DefaultMaxLineLength,
		Debug:         false,
	}
}

// Result represents one processed lyrics document
type Result struct {
	Text          string    `json:"text"`
	InputLines    int       `json:"input_lines"`
	OutputLines   int       `json:"output_lines"`
	MaxLineLength int       `json:"max_line_length"`
	ProcessedAt   time.Time `json:"processed_at"`
}

// splitKind classifies a considered split position.
type splitKind string

const (
	splitComma        splitKind = "comma"
	splitConjunction  splitKind = "conjunction"
	splitWordBoundary splitKind = "word_boundary"
	splitForced       splitKind = "forced"
)

// splitCandidate is a split position under consideration for one line. It
// exists only for the duration of a single split decision.
type splitCandidate struct {
	position int       // rune index where the head segment ends
	kind     splitKind // what sits at the position
	score    int       // rune distance from the line midpoint, lower is better
}
