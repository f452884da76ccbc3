// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/filmlerim/internal/cache"
	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/metrics"
	"github.com/tomtom215/filmlerim/internal/models"
)

const (
	breakerName = "tmdb-api"

	// maxErrorBodySize bounds how much of an error response is kept.
	maxErrorBodySize = 4 * 1024
	// maxResponseBodySize bounds a successful response; TMDB movie and
	// search payloads are a few KiB.
	maxResponseBodySize = 2 << 20

	maxCandidates = 20

	searchCacheTTL  = 5 * time.Minute
	searchCacheSize = 256
)

// Candidate is one search hit shown on the admin import screen.
type Candidate struct {
	TMDBID      int64    `json:"tmdb_id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	PosterURL   string   `json:"poster_url"`
	ReleaseYear string   `json:"release_year,omitempty"`
	Genres      []string `json:"genres"`
	Imported    bool     `json:"imported"`
}

// Movie is the subset of /movie/{id} the catalog uses.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
	Genres      []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// GenreIDs returns the movie's genre ids in TMDB order.
func (m *Movie) GenreIDs() []int {
	ids := make([]int, len(m.Genres))
	for i, g := range m.Genres {
		ids[i] = g.ID
	}
	return ids
}

type searchResponse struct {
	Results []struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Overview    string `json:"overview"`
		PosterPath  string `json:"poster_path"`
		ReleaseDate string `json:"release_date"`
		GenreIDs    []int  `json:"genre_ids"`
	} `json:"results"`
	TotalResults int `json:"total_results"`
}

type videosResponse struct {
	Results []Video `json:"results"`
}

// Video is one entry of /movie/{id}/videos.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Client calls the TMDB API. Safe for concurrent use.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	httpClient   *http.Client
	limiter      *rate.Limiter
	cb           *gobreaker.CircuitBreaker[[]byte]
	searchCache  *cache.Cache
	maxBodySize  int64
}

// NewClient builds a client from cfg. A client without an API key is
// valid; every call then returns ErrMissingAPIKey.
func NewClient(cfg config.TMDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 20
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		cb:           newBreaker(),
		searchCache:  cache.New(searchCacheTTL, searchCacheSize),
		maxBodySize:  maxResponseBodySize,
	}
}

func newBreaker() *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Unknown ids and cancelled requests say nothing about TMDB health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoResults) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// PosterURL joins a TMDB poster path onto the image base. An empty path
// yields an empty URL.
func (c *Client) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + "/" + strings.TrimLeft(path, "/")
}

// Search returns TMDB's ranked candidates for query, at most one page.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNoResults
	}

	key := cache.GenerateKey("search", map[string]string{
		"query":    strings.ToLower(query),
		"language": c.language,
	})
	if cached, ok := c.searchCache.Get(key); ok {
		// Callers set Imported on their copy.
		return append([]Candidate(nil), cached.([]Candidate)...), nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var resp searchResponse
	if err := c.get(ctx, "search", "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoResults
	}

	n := len(resp.Results)
	if n > maxCandidates {
		n = maxCandidates
	}
	candidates := make([]Candidate, 0, n)
	for _, r := range resp.Results[:n] {
		candidates = append(candidates, Candidate{
			TMDBID:      r.ID,
			Title:       r.Title,
			Overview:    r.Overview,
			PosterURL:   c.PosterURL(r.PosterPath),
			ReleaseYear: releaseYear(r.ReleaseDate),
			Genres:      GenreLabels(r.GenreIDs),
		})
	}
	c.searchCache.Set(key, append([]Candidate(nil), candidates...))
	return candidates, nil
}

// Movie fetches the details of one movie. Unknown ids return ErrNoResults.
func (c *Client) Movie(ctx context.Context, id int64) (*Movie, error) {
	var m Movie
	if err := c.get(ctx, "movie", "/movie/"+strconv.FormatInt(id, 10), nil, &m); err != nil {
		return nil, err
	}
	if m.ID == 0 || strings.TrimSpace(m.Title) == "" {
		return nil, ErrNoResults
	}
	return &m, nil
}

// Trailer returns the YouTube URL of the movie's first trailer, or "" when
// it has none.
func (c *Client) Trailer(ctx context.Context, id int64) (string, error) {
	var resp videosResponse
	if err := c.get(ctx, "videos", "/movie/"+strconv.FormatInt(id, 10)+"/videos", nil, &resp); err != nil {
		return "", err
	}
	return TrailerURL(resp.Results), nil
}

// TrailerURL picks the first YouTube trailer.
func TrailerURL(videos []Video) string {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" && v.Key != "" {
			return "https://www.youtube.com/watch?v=" + url.QueryEscape(v.Key)
		}
	}
	return ""
}

// FilmInput assembles a catalog film from the movie's details and trailer.
// A failed trailer lookup leaves TrailerURL empty.
func (c *Client) FilmInput(ctx context.Context, id int64) (*models.FilmInput, error) {
	m, err := c.Movie(ctx, id)
	if err != nil {
		return nil, err
	}

	trailer, err := c.Trailer(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMissingAPIKey) || errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		logging.Ctx(ctx).Warn().Err(err).Int64("tmdb_id", id).Msg("Trailer lookup failed")
		trailer = ""
	}

	tmdbID := m.ID
	return &models.FilmInput{
		Title:       strings.TrimSpace(m.Title),
		Description: strings.TrimSpace(m.Overview),
		PosterURL:   c.PosterURL(m.PosterPath),
		Genres:      GenreLabels(m.GenreIDs()),
		TMDBID:      &tmdbID,
		TrailerURL:  trailer,
	}, nil
}

// get performs one paced, breaker-guarded GET and decodes the body into out.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	if !c.Enabled() {
		return ErrMissingAPIKey
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	reqURL := c.baseURL + path + "?" + params.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("tmdb rate limiter: %w", err)
	}

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, endpoint, reqURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			logging.Ctx(ctx).Warn().Err(err).Str("endpoint", endpoint).Msg("[CIRCUIT BREAKER] Request rejected")
			return ErrUnavailable
		}
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrUpstream, endpoint, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordTMDBRequest(endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s request failed: %v", ErrUpstream, endpoint, redactKey(err))
	}
	defer resp.Body.Close()
	metrics.RecordTMDBRequest(endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNoResults
	case resp.StatusCode != http.StatusOK:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: %s returned status %d: %s", ErrUpstream, endpoint, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s response: %v", ErrUpstream, endpoint, err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, fmt.Errorf("%w: %s response exceeds %d bytes", ErrUpstream, endpoint, c.maxBodySize)
	}
	return body, nil
}

// redactKey strips the query string, which carries the API key, from
// *url.Error messages.
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
		}
	}
	return err
}

func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}
