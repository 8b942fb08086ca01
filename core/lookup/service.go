// ABOUTME: Lookup service resolves dictionary words to parsed entries
// ABOUTME: Coordinates the HTTP fetch and the HTML parse independent of the API layer

package lookup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"dle-app-api/core/dle"
	"dle-app-api/core/domain"
	"dle-app-api/core/errors"
	"dle-app-api/core/interfaces"
)

// Config holds the lookup service settings
type Config struct {
	// BaseURL is the dictionary origin lookups run against. Empty means the
	// public dictionary site.
	BaseURL string
}

// LookupService resolves words against the online dictionary
type LookupService struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewLookupService creates a new lookup service instance
func NewLookupService(deps interfaces.Dependencies, cfg Config) *LookupService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = dle.DefaultBaseURL
	}
	return &LookupService{
		deps: deps,
		cfg:  cfg,
	}
}

// SearchByWord fetches and parses the dictionary entry for a word
func (s *LookupService) SearchByWord(ctx context.Context, word string) (*domain.SearchResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, &errors.ValidationError{Field: "word", Message: "word cannot be empty"}
	}

	return s.fetchAndParse(ctx, dle.EntryURL(s.cfg.BaseURL, word))
}

// SearchByURL fetches and parses a dictionary page addressed by its full URL.
// Only URLs under the configured dictionary origin are accepted.
func (s *LookupService) SearchByURL(ctx context.Context, pageURL string) (*domain.SearchResult, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "url cannot be empty"}
	}

	base := strings.TrimRight(s.cfg.BaseURL, "/")
	if !strings.HasPrefix(pageURL, base+"/") {
		return nil, &errors.ValidationError{Field: "url", Message: "url does not point at the dictionary"}
	}

	return s.fetchAndParse(ctx, pageURL)
}

func (s *LookupService) fetchAndParse(ctx context.Context, pageURL string) (*domain.SearchResult, error) {
	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return nil, &errors.NetworkError{URL: pageURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.HTTPStatusError{URL: pageURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.NetworkError{URL: pageURL, Err: err}
	}

	result, stats, err := dle.ParseWithStats(string(body))
	if err != nil {
		return nil, err
	}

	// Malformed blocks are skipped rather than failing the whole page;
	// surface how many at debug level.
	if stats.Total() > 0 && s.deps.Logger != nil {
		fields := stats.Fields()
		fields["url"] = pageURL
		s.deps.Logger.Debug("Discarded malformed entry content", fields)
	}

	return result, nil
}
