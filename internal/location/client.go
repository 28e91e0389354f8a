package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client resolves location names to slugs and slugs to center data.
type Client struct {
	SlugAPIURL string
	DataAPIURL string
	APIKey     string
	HTTP       *http.Client
	Logger     zerolog.Logger
}

func NewClient(slugAPIURL, dataAPIURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		SlugAPIURL: slugAPIURL,
		DataAPIURL: dataAPIURL,
		APIKey:     apiKey,
		HTTP:       &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// GetSlug resolves a location name to its center slug. Returns "" with a nil
// error when the API has no match.
func (c *Client) GetSlug(ctx context.Context, locationName string) (string, error) {
	if c.SlugAPIURL == "" || locationName == "" {
		return "", nil
	}

	u, err := url.Parse(c.SlugAPIURL)
	if err != nil {
		return "", fmt.Errorf("slug api url: %w", err)
	}
	q := u.Query()
	q.Set("location", locationName)
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String())
	if err != nil {
		return "", err
	}

	slug := extractSlug(body)
	if slug == "" {
		c.Logger.Warn().Str("location", locationName).Msg("no slug in location api response")
		return "", nil
	}
	c.Logger.Info().Str("location", locationName).Str("slug", slug).Msg("resolved location slug")
	return slug, nil
}

// GetData fetches the center data document for a slug. The configured URL
// may carry a {slug} placeholder; otherwise the slug rides a query param.
func (c *Client) GetData(ctx context.Context, slug string) (map[string]any, error) {
	if c.DataAPIURL == "" || slug == "" {
		return nil, nil
	}

	endpoint := c.DataAPIURL
	if strings.Contains(endpoint, "{slug}") {
		endpoint = strings.ReplaceAll(endpoint, "{slug}", url.PathEscape(slug))
	} else if strings.Contains(endpoint, "?") {
		endpoint += "&slug=" + url.QueryEscape(slug)
	} else {
		endpoint += "?slug=" + url.QueryEscape(slug)
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode location data: %w", err)
	}
	return data, nil
}

// Resolve runs the full flow: name to slug, slug to data.
func (c *Client) Resolve(ctx context.Context, locationName string) (string, map[string]any, error) {
	slug, err := c.GetSlug(ctx, locationName)
	if err != nil || slug == "" {
		return "", nil, err
	}
	data, err := c.GetData(ctx, slug)
	if err != nil {
		return slug, nil, err
	}
	return slug, data, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("location api returned %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// extractSlug digs the slug out of the response, which may be an object, a
// wrapper object, or a list.
func extractSlug(body []byte) string {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	switch v := doc.(type) {
	case map[string]any:
		if s, ok := v["slug"].(string); ok {
			return s
		}
		if data, ok := v["data"].(map[string]any); ok {
			if s, ok := data["slug"].(string); ok {
				return s
			}
		}
	case []any:
		if len(v) == 0 {
			return ""
		}
		switch first := v[0].(type) {
		case map[string]any:
			if s, ok := first["slug"].(string); ok {
				return s
			}
		case string:
			return first
		}
	}
	return ""
}
