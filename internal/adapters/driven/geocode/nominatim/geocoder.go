// Package nominatim provides a geocoding tool adapter backed by the
// OSM Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Geocoder implements the interface.
var _ driven.ToolAdapter = (*Geocoder)(nil)

// Default configuration values.
const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "landmarks-resolver/0.1"
	DefaultTimeout   = 10 * time.Second
	DefaultLimit     = 5
)

// Config holds configuration for the Nominatim geocoder.
type Config struct {
	// BaseURL is the Nominatim endpoint (default: the public instance).
	BaseURL string

	// UserAgent identifies this client. The public instance rejects
	// requests without one.
	UserAgent string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration

	// Limit is the maximum number of results requested (default: 5).
	Limit int
}

// Geocoder resolves free text to geographic points. Requests are rate
// limited to one per second, the public Nominatim usage policy.
type Geocoder struct {
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
	limit     int
}

// searchResult is the Nominatim response format (one entry).
type searchResult struct {
	DisplayName string  `json:"display_name"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Importance  float64 `json:"importance"`
}

// NewGeocoder creates a new Nominatim geocoder adapter.
func NewGeocoder(cfg Config) *Geocoder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Limit == 0 {
		cfg.Limit = DefaultLimit
	}

	return &Geocoder{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		limit:     cfg.Limit,
	}
}

// Name returns the source tag.
func (g *Geocoder) Name() string {
	return domain.SourceGeocode
}

// Call geocodes req.Query. Failures map to an error result, never a
// panic or Go error - the dispatcher treats this source as optional.
func (g *Geocoder) Call(ctx context.Context, req domain.ToolRequest) domain.ToolResult {
	if req.Query == "" {
		return domain.ErrorResult("geocode: empty query")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return domain.ErrorResult(fmt.Sprintf("geocode: %v", err))
	}

	results, err := g.search(ctx, req.Query)
	if err != nil {
		return domain.ErrorResult(fmt.Sprintf("geocode: %v", err))
	}
	if len(results) == 0 {
		return domain.EmptyResult(map[string]string{"queried": req.Query})
	}

	candidates := make([]domain.Candidate, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		c := domain.Candidate{
			Title:  domain.Ptr(r.DisplayName),
			Lat:    domain.Ptr(lat),
			Lon:    domain.Ptr(lon),
			Source: domain.SourceGeocode,
		}
		if r.Importance > 0 {
			c.Score = domain.Ptr(min(r.Importance, 1.0))
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return domain.EmptyResult(map[string]string{"queried": req.Query})
	}

	return domain.OKResult(candidates, map[string]string{
		"queried": req.Query,
		"results": strconv.Itoa(len(candidates)),
	})
}

// search performs the GET /search request.
func (g *Geocoder) search(ctx context.Context, query string) ([]searchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(g.limit))

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return results, nil
}
