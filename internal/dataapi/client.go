// Package dataapi talks to the center services API: facility profiles,
// camps, and programs. Responses are cached when a cache client is wired.
package dataapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/harshitcn/cn-chatbot-sub000/internal/cache"
	"github.com/harshitcn/cn-chatbot-sub000/internal/location"
)

const DefaultBaseURL = "https://services.codeninjas.com/api/v1"

// Client fetches center data. Cache may be nil.
type Client struct {
	BaseURL  string
	APIKey   string
	HTTP     *http.Client
	Cache    cache.Client
	CacheTTL time.Duration
	Logger   zerolog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, c cache.Client, ttl time.Duration, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		HTTP:     &http.Client{Timeout: timeout},
		Cache:    c,
		CacheTTL: ttl,
		Logger:   logger,
	}
}

// GetFacility fetches the facility document for a slug, trying the profile
// endpoint first and falling back to the plain facility endpoint.
func (c *Client) GetFacility(ctx context.Context, slug string) (map[string]any, error) {
	if slug == "" {
		return nil, nil
	}
	slug = location.NormalizeSlug(slug)

	var facility map[string]any
	err := c.getJSON(ctx, fmt.Sprintf("%s/facility/profile/slug/%s", c.BaseURL, url.PathEscape(slug)), &facility)
	if err == nil {
		return facility, nil
	}
	c.Logger.Warn().Err(err).Str("slug", slug).Msg("profile endpoint failed, trying facility endpoint")

	if err := c.getJSON(ctx, fmt.Sprintf("%s/facility/%s", c.BaseURL, url.PathEscape(slug)), &facility); err != nil {
		return nil, fmt.Errorf("fetch facility %q: %w", slug, err)
	}
	return facility, nil
}

// GetCamps fetches camps for a slug. When year and week are both set, the
// byweek endpoint is used instead of upcoming.
func (c *Client) GetCamps(ctx context.Context, slug string, year, week int) ([]map[string]any, error) {
	guid, err := c.facilityGUID(ctx, slug)
	if err != nil {
		return nil, err
	}
	if guid == "" {
		return nil, nil
	}

	var endpoint string
	if year != 0 && week != 0 {
		endpoint = fmt.Sprintf("%s/facility/camps/%s/byweek/%d/%d", c.BaseURL, url.PathEscape(guid), year, week)
	} else {
		endpoint = fmt.Sprintf("%s/facility/camps/upcoming/%s", c.BaseURL, url.PathEscape(guid))
	}

	var doc any
	if err := c.getJSON(ctx, endpoint, &doc); err != nil {
		return nil, fmt.Errorf("fetch camps for %q: %w", slug, err)
	}
	return extractList(doc, "camps"), nil
}

// GetPrograms fetches programs for a slug, falling back to program lists
// embedded in the facility document when the programs endpoint fails.
func (c *Client) GetPrograms(ctx context.Context, slug string) ([]map[string]any, error) {
	facility, err := c.GetFacility(ctx, slug)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, nil
	}

	guid := extractGUID(facility)
	if guid == "" {
		return embeddedPrograms(facility), nil
	}

	var doc any
	if err := c.getJSON(ctx, fmt.Sprintf("%s/facility/programs/%s", c.BaseURL, url.PathEscape(guid)), &doc); err != nil {
		c.Logger.Warn().Err(err).Str("slug", slug).Msg("programs endpoint failed, using facility data")
		return embeddedPrograms(facility), nil
	}
	return extractList(doc, "programs"), nil
}

func (c *Client) facilityGUID(ctx context.Context, slug string) (string, error) {
	facility, err := c.GetFacility(ctx, slug)
	if err != nil {
		return "", err
	}
	if facility == nil {
		return "", nil
	}
	guid := extractGUID(facility)
	if guid == "" {
		c.Logger.Warn().Str("slug", slug).Msg("facility document carries no GUID")
	}
	return guid, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	if c.Cache != nil {
		if data, err := c.Cache.Get(ctx, endpoint); err == nil {
			return json.Unmarshal(data, out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("data api returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if c.Cache != nil {
		if err := c.Cache.Set(ctx, endpoint, body, c.CacheTTL); err != nil {
			c.Logger.Warn().Err(err).Msg("failed to cache data api response")
		}
	}
	return json.Unmarshal(body, out)
}

// extractGUID tries the field names the API uses across versions.
func extractGUID(facility map[string]any) string {
	for _, key := range []string{"facilityGUID", "facilityId", "id", "guid"} {
		switch v := facility[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

// extractList unwraps the item list from either a bare array or an object
// keyed by the named field, "data", or "items".
func extractList(doc any, field string) []map[string]any {
	var raw []any
	switch v := doc.(type) {
	case []any:
		raw = v
	case map[string]any:
		for _, key := range []string{field, "data", "items"} {
			if list, ok := v[key].([]any); ok && len(list) > 0 {
				raw = list
				break
			}
		}
	}

	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func embeddedPrograms(facility map[string]any) []map[string]any {
	for _, key := range []string{"programs", "availablePrograms"} {
		if list, ok := facility[key].([]any); ok && len(list) > 0 {
			return extractList(list, "")
		}
	}
	return nil
}
