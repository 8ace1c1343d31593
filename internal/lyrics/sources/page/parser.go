package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sukalov/lyricsfmt/internal/logger"
)

// lyricSelectors are the places lyric sites usually keep the song text,
// tried in order until one yields something.
var lyricSelectors = []string{
	`[itemprop="lyrics"]`,
	`pre[itemprop="chordsBlock"]`,
	".lyrics",
	"#lyrics",
	".song-text",
	"pre",
}

// FetchResult represents the raw lyrics pulled from one page
type FetchResult struct {
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	Selector  string    `json:"selector"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Parser extracts raw lyric text from web pages.
type Parser struct {
	client *Client
	log    *logger.Logger
}

func NewParser(log *logger.Logger) *Parser {
	return &Parser{
		client: NewClient(),
		log:    log,
	}
}

// IsURL reports whether the given input looks like something Fetch can use.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch downloads a page and extracts the lyric text from it. The text comes
// back raw; normalizing and splitting are the processor's job.
func (p *Parser) Fetch(url string) (*FetchResult, error) {
	p.log.Debug(fmt.Sprintf("fetching lyrics page: %s", url))

	html, err := p.client.FetchPage(url)
	if err != nil {
		p.log.Error(fmt.Sprintf("failed to fetch page %s: %v", url, err))
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range lyricSelectors {
		selection := doc.Find(selector)
		if selection.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(selection.First().Text())
		if text == "" {
			continue
		}

		p.log.Debug(fmt.Sprintf("found lyric text via selector %q (%d chars)", selector, len(text)))
		return &FetchResult{
			URL:       url,
			Text:      text,
			Selector:  selector,
			FetchedAt: time.Now(),
		}, nil
	}

	p.log.Error(fmt.Sprintf("no lyric text found on page: %s", url))
	return nil, fmt.Errorf("no lyric text found on page: %s", url)
}
