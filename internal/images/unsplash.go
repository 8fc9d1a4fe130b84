// Package images provisions cover photography for generated trips from the
// Unsplash search API, degrading to a fixed stock set when the search is
// unavailable or empty.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tourvisto/backend/internal/domain"
)

// maxImages is the number of cover images stored per trip.
const maxImages = 3

// fallbackURLs is the fixed stock set substituted when search fails or
// returns nothing. Always exactly maxImages entries — never mixed with
// search results.
var fallbackURLs = []string{
	"https://images.unsplash.com/photo-1519681393784-d120267933ba",
	"https://images.unsplash.com/photo-1522092979357-3e5e6925ad20",
	"https://images.unsplash.com/photo-1541701494587-d12eb74745fd",
}

// FallbackURLs returns a copy of the fixed stock image set.
func FallbackURLs() []string {
	out := make([]string, len(fallbackURLs))
	copy(out, fallbackURLs)
	return out
}

// Client queries the Unsplash photo search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	logger     *slog.Logger
}

// NewClient constructs a Client against baseURL (production:
// "https://api.unsplash.com"; tests pass an httptest server URL).
func NewClient(baseURL, accessKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		accessKey:  accessKey,
		logger:     logger,
	}
}

// searchResponse mirrors the subset of the Unsplash search payload we read.
type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Provision searches for photos matching query and returns up to maxImages
// URLs in service order, tagged ImageSourceSearch. Any failure — transport
// error, non-200 status, malformed body, zero results — yields the fallback
// set tagged ImageSourceFallback. Provision never returns an error: image
// degradation must not abort trip creation.
func (c *Client) Provision(ctx context.Context, query string) domain.ImageSet {
	urls, err := c.search(ctx, query)
	if err != nil {
		c.logger.WarnContext(ctx, "image search failed, using fallback set",
			"query", query, "error", err)
		return domain.ImageSet{URLs: FallbackURLs(), Source: domain.ImageSourceFallback}
	}
	if len(urls) == 0 {
		c.logger.WarnContext(ctx, "image search returned no results, using fallback set",
			"query", query)
		return domain.ImageSet{URLs: FallbackURLs(), Source: domain.ImageSourceFallback}
	}
	if len(urls) > maxImages {
		urls = urls[:maxImages]
	}
	return domain.ImageSet{URLs: urls, Source: domain.ImageSourceSearch}
}

// search performs the HTTP round trip and decodes the result URLs.
func (c *Client) search(ctx context.Context, query string) ([]string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("client_id", c.accessKey)
	q.Set("per_page", fmt.Sprint(maxImages))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("images.Client.search: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("images.Client.search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("images.Client.search: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("images.Client.search: decode: %w", err)
	}

	urls := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		if r.URLs.Regular != "" {
			urls = append(urls, r.URLs.Regular)
		}
	}
	return urls, nil
}
