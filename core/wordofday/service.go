// ABOUTME: Word of the day service reads the dictionary's RSS feed
// ABOUTME: Exposes the featured word with its link and a plain-text summary

package wordofday

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"dle-app-api/core/domain"
	"dle-app-api/core/errors"
	"dle-app-api/core/interfaces"
	"dle-app-api/pkg/utils/html"
	timeutils "dle-app-api/pkg/utils/time"
	"github.com/mmcdole/gofeed"
)

// DefaultFeedURL is the dictionary's palabra del día feed.
const DefaultFeedURL = "https://dle.rae.es/rss/palabra-del-dia"

// Config holds the word of the day service settings
type Config struct {
	// FeedURL overrides the feed location, empty means the public feed
	FeedURL string
}

// WordOfDayService reads the featured word from the dictionary feed
type WordOfDayService struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewWordOfDayService creates a new word of the day service instance
func NewWordOfDayService(deps interfaces.Dependencies, cfg Config) *WordOfDayService {
	if cfg.FeedURL == "" {
		cfg.FeedURL = DefaultFeedURL
	}
	return &WordOfDayService{
		deps: deps,
		cfg:  cfg,
	}
}

// Today returns the currently featured word
func (s *WordOfDayService) Today(ctx context.Context) (*domain.WordOfDay, error) {
	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.cfg.FeedURL)
	if err != nil {
		return nil, &errors.NetworkError{URL: s.cfg.FeedURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.HTTPStatusError{URL: s.cfg.FeedURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.NetworkError{URL: s.cfg.FeedURL, Err: err}
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &errors.ParseError{Reason: fmt.Sprintf("unreadable word of the day feed: %v", err)}
	}

	if len(parsed.Items) == 0 {
		return nil, &errors.ParseError{Reason: "word of the day feed has no items"}
	}

	item := parsed.Items[0]
	word := strings.TrimSpace(item.Title)
	if word == "" {
		return nil, &errors.ParseError{Reason: "word of the day item has no title"}
	}

	today := &domain.WordOfDay{
		Word:    word,
		Link:    strings.TrimSpace(item.Link),
		Summary: html.StripHTML(item.Description),
	}

	// gofeed leaves PublishedParsed nil for pubDate shapes it does not
	// recognize, so fall back to our own parsing
	if item.PublishedParsed != nil {
		today.Date = *item.PublishedParsed
	} else {
		today.Date = timeutils.ParseFlexibleTime(item.Published)
	}

	return today, nil
}
