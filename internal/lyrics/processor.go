package lyrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/sukalov/lyricsfmt/internal/logger"
)

// Processor runs the normalize-then-split pipeline over whole lyric
// documents. It holds no state between lines, so one Processor can serve any
// number of documents.
type Processor struct {
	config Config
	log    *logger.Logger
}

// NewProcessor creates a processor for the given configuration. The logger
// may be nil; diagnostics are then dropped. An out-of-range line length is a
// caller contract violation and fails here rather than during processing.
func NewProcessor(config Config, log *logger.Logger) (*Processor, error) {
	if config.MaxLineLength <= 0 {
		return nil, fmt.Errorf("max line length must be positive, got %d", config.MaxLineLength)
	}
	return &Processor{config: config, log: log}, nil
}

// Config returns the configuration the processor was built with.
func (p *Processor) Config() Config {
	return p.config
}

// Process reformats a lyrics document so every line fits the configured
// maximum length. Line order is preserved, blank-line paragraph breaks
// survive, and no word is ever dropped, duplicated or reordered. Forced
// over-length emissions and iteration-cap hits degrade the output, never
// abort it.
func (p *Processor) Process(text string) *Result {
	p.log.Debug(fmt.Sprintf("processing document (%d chars, max line length %d)", len(text), p.config.MaxLineLength))

	normalized := Normalize(text)
	inputLines := strings.Split(normalized, "\n")

	var out []string
	for _, line := range inputLines {
		if line == "" {
			out = append(out, "")
			continue
		}

		segments, stats := processLine(line, p.config.MaxLineLength)
		if stats.capHit {
			p.log.Error(fmt.Sprintf("iteration cap reached, emitting remainder unsplit: %s", preview(line)))
		}
		if stats.forced > 0 {
			p.log.Debug(fmt.Sprintf("%d segment(s) with no break opportunity left over length: %s", stats.forced, preview(line)))
		}
		if stats.iterations > 0 {
			p.log.Debug(fmt.Sprintf("split %q into %d segment(s)", line, len(segments)))
		}
		out = append(out, segments...)
	}

	result := &Result{
		Text:          strings.Join(out, "\n"),
		InputLines:    len(inputLines),
		OutputLines:   len(out),
		MaxLineLength: p.config.MaxLineLength,
		ProcessedAt:   time.Now(),
	}

	p.log.Debug(fmt.Sprintf("processed %d input line(s) into %d output line(s)", result.InputLines, result.OutputLines))
	return result
}

// preview shortens a line for log output.
func preview(line string) string {
	const limit = 48
	r := []rune(line)
	if len(r) <= limit {
		return line
	}
	return string(r[:limit]) + "…"
}
