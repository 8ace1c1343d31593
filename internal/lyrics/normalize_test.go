package lyrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "plain text untouched",
			in:   "just a lyric line",
			want: "just a lyric line",
		},
		{
			name: "control characters stripped",
			in:   "he\x00llo\x07 wor\x1bld",
			want: "hello world",
		},
		{
			name: "unicode spaces folded to ascii",
			in:   "one two three four",
			want: "one two three four",
		},
		{
			name: "tabs treated as spaces",
			in:   "one\ttwo",
			want: "one two",
		},
		{
			name: "crlf collapses to lf",
			in:   "first line\r\nsecond line",
			want: "first line\nsecond line",
		},
		{
			name: "line edges trimmed",
			in:   "  first line  \n\tsecond line ",
			want: "first line\nsecond line",
		},
		{
			name: "excess blank lines collapsed to one",
			in:   "verse\n\n\n\n\nchorus",
			want: "verse\n\nchorus",
		},
		{
			name: "single blank line preserved",
			in:   "verse\n\nchorus",
			want: "verse\n\nchorus",
		},
		{
			name: "space before comma removed and space after ensured",
			in:   "hello   ,world",
			want: "hello, world",
		},
		{
			name: "space before terminal punctuation removed",
			in:   "wait for it !  really ?  yes .",
			want: "wait for it! really? yes.",
		},
		{
			name: "whitespace only becomes empty",
			in:   " \t   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"hello, world",
		"first line\n\nsecond line",
		"wait for it! really?",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Normalize(in), "normalizing normalized text must be a no-op")
	}
}
