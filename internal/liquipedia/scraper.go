package liquipedia

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/dotafeed/internal/logger"
	"github.com/pfrederiksen/dotafeed/internal/ratelimit"
	"github.com/pfrederiksen/dotafeed/internal/record"
	"github.com/pfrederiksen/dotafeed/internal/webcache"
)

const (
	DefaultBaseURL   = "https://liquipedia.net/dota2"
	DefaultUserAgent = "dotafeed/1.0 (github.com/pfrederiksen/dotafeed)"
	Timeout          = 30 * time.Second
)

// Config holds scraper settings. Zero values fall back to defaults; a nil
// Cache disables caching.
type Config struct {
	BaseURL     string
	UserAgent   string
	MinInterval time.Duration
	Cache       *webcache.Cache
}

// Scraper fetches and parses Dota 2 tournament pages from the wiki.
type Scraper struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *ratelimit.Limiter
	cache     *webcache.Cache
}

// New creates a new Scraper instance
func New(cfg Config) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Scraper{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: Timeout,
		},
		limiter: ratelimit.New(cfg.MinInterval),
		cache:   cfg.Cache,
	}
}

// Tournaments fetches the tournament listing for a year, optionally filtered
// by tier. Year 0 means the current year; an empty tier matches all tiers.
// Tier matching is a case-insensitive substring test against the section
// header.
func (s *Scraper) Tournaments(year int, tier string) ([]record.Tournament, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	doc, err := s.fetchPage(fmt.Sprintf("/Dota_2/Tournaments/%d", year))
	if err != nil {
		return nil, fmt.Errorf("fetching tournament listing: %w", err)
	}

	return parseTournaments(doc, year, tier, s.baseURL), nil
}

// TournamentDetails fetches a single tournament page and extracts its
// infobox, participating teams, and bracket matches.
func (s *Scraper) TournamentDetails(path string) (*record.TournamentDetails, error) {
	doc, err := s.fetchPage(path)
	if err != nil {
		return nil, fmt.Errorf("fetching tournament page: %w", err)
	}

	return parseTournamentDetails(doc, path, s.baseURL), nil
}

// SearchTournaments queries the wiki's opensearch endpoint for pages
// matching the query.
func (s *Scraper) SearchTournaments(query string) ([]record.SearchResult, error) {
	path := "/api.php?action=opensearch&search=" + url.QueryEscape(query) + "&format=json"

	body, err := s.fetch(path)
	if err != nil {
		return nil, fmt.Errorf("searching tournaments: %w", err)
	}

	return parseSearchResults([]byte(body), s.baseURL)
}

// fetchPage fetches a path and parses the body as HTML.
func (s *Scraper) fetchPage(path string) (*goquery.Document, error) {
	body, err := s.fetch(path)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}

// fetch returns the body for a path, consulting the cache before the
// network. Only real network fetches pass through the rate limiter.
func (s *Scraper) fetch(path string) (string, error) {
	pageURL := s.baseURL + path

	if s.cache != nil {
		if body, ok := s.cache.Get(pageURL); ok {
			logger.IncrCounter("liquipedia.cache.hit")
			logger.Debug("Serving page from cache", logger.Fields{"url": pageURL})
			return body, nil
		}
		logger.IncrCounter("liquipedia.cache.miss")
	}

	s.limiter.Wait()

	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("Fetch failed", logger.Fields{"url": pageURL}, err)
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()
	logger.RecordTiming("liquipedia.fetch", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		logger.Error("Fetch returned bad status", logger.Fields{
			"url":    pageURL,
			"status": resp.StatusCode,
		}, nil)
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	body := string(data)

	if s.cache != nil {
		if err := s.cache.Put(pageURL, body); err != nil {
			logger.Warn("Failed to cache page", logger.Fields{"url": pageURL, "error": err.Error()})
		}
	}

	return body, nil
}
