package page

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchPrefersLyricsMarkup(t *testing.T) {
	server := servePage(t, `<html><body>
		<pre>chord noise that should lose</pre>
		<div itemprop="lyrics">the real song text</div>
	</body></html>`)

	parser := NewParser(nil)
	result, err := parser.Fetch(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "the real song text", result.Text)
	assert.Equal(t, `[itemprop="lyrics"]`, result.Selector)
}

func TestFetchFallsBackThroughSelectors(t *testing.T) {
	server := servePage(t, `<html><body>
		<div class="song-text">fallback lyric body</div>
	</body></html>`)

	parser := NewParser(nil)
	result, err := parser.Fetch(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "fallback lyric body", result.Text)
	assert.Equal(t, ".song-text", result.Selector)
}

func TestFetchNoLyricsFound(t *testing.T) {
	server := servePage(t, `<html><body><p>nothing here</p></body></html>`)

	parser := NewParser(nil)
	_, err := parser.Fetch(server.URL)
	assert.Error(t, err)
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	parser := NewParser(nil)
	_, err := parser.Fetch(server.URL)
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/song"))
	assert.True(t, IsURL("http://example.com/song"))
	assert.False(t, IsURL("song.txt"))
	assert.False(t, IsURL("just some lyrics"))
}
