package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessedFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"song.txt", "song (Lyrics Processed).txt"},
		{"my song.lyrics.txt", "my song.lyrics (Lyrics Processed).txt"},
		{"noextension", "noextension (Lyrics Processed)"},
		{".hidden", ".hidden (Lyrics Processed)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProcessedFilename(tt.in))
	}
}

func TestLoadEnvMissing(t *testing.T) {
	_, err := LoadEnv([]string{"LYRICSFMT_DEFINITELY_UNSET_VAR"})
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LYRICSFMT_TEST_VAR", "value")
	env, err := LoadEnv([]string{"LYRICSFMT_TEST_VAR"})
	assert.NoError(t, err)
	assert.Equal(t, "value", env["LYRICSFMT_TEST_VAR"])
}
