package lyrics

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukalov/lyricsfmt/internal/logger"
)

func TestNewProcessorRejectsInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, -36} {
		_, err := NewProcessor(Config{MaxLineLength: length}, nil)
		assert.Error(t, err, "length %d must be rejected", length)
	}
}

func TestProcessorShortDocumentUnchanged(t *testing.T) {
	p, err := NewProcessor(DefaultConfig(), nil)
	require.NoError(t, err)

	in := "first line\n\nsecond line"
	result := p.Process(in)
	assert.Equal(t, in, result.Text)
	assert.Equal(t, 3, result.InputLines)
	assert.Equal(t, 3, result.OutputLines)
}

func TestProcessorSplitsLongLines(t *testing.T) {
	p, err := NewProcessor(DefaultConfig(), nil)
	require.NoError(t, err)

	result := p.Process("This is a simple test line that should be split into two lines.")
	for _, line := range strings.Split(result.Text, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), DefaultMaxLineLength)
	}
	assert.Equal(t, 1, result.InputLines)
	assert.Equal(t, 2, result.OutputLines)
}

func TestProcessorNormalizesBeforeSplitting(t *testing.T) {
	p, err := NewProcessor(DefaultConfig(), nil)
	require.NoError(t, err)

	result := p.Process("hello   ,world\n\n\n\n\ngoodbye again")
	assert.Equal(t, "hello, world\n\ngoodbye again", result.Text)
}

func TestProcessorPreservesBlankParagraphBreaks(t *testing.T) {
	p, err := NewProcessor(Config{MaxLineLength: 20}, nil)
	require.NoError(t, err)

	result := p.Process("verse line one\n\nchorus line that is much too long to fit")
	lines := strings.Split(result.Text, "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "verse line one", lines[0])
	assert.Equal(t, "", lines[1])
}

func TestProcessorIdempotent(t *testing.T) {
	p, err := NewProcessor(DefaultConfig(), nil)
	require.NoError(t, err)

	first := p.Process("I never thought that I would fall for you, ever\nand the story goes on far beyond this line here")
	second := p.Process(first.Text)
	assert.Equal(t, first.Text, second.Text)
}

func TestProcessorDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, true)

	p, err := NewProcessor(Config{MaxLineLength: 20, Debug: true}, log)
	require.NoError(t, err)

	p.Process("a line that certainly needs splitting somewhere")
	assert.Contains(t, buf.String(), "DEBUG")

	buf.Reset()
	quiet, err := NewProcessor(Config{MaxLineLength: 20}, logger.New(&buf, false))
	require.NoError(t, err)
	quiet.Process("a line that certainly needs splitting somewhere")
	assert.NotContains(t, buf.String(), "DEBUG")
}

func TestProcessorForcedEmissionIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewProcessor(Config{MaxLineLength: 10}, logger.New(&buf, true))
	require.NoError(t, err)

	result := p.Process("supercalifragilisticexpialidocious")
	assert.Equal(t, "supercalifragilisticexpialidocious", result.Text)
}
