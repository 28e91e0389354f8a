package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SearchService is the augmenting web-search capability the model can call.
type SearchService interface {
	Search(ctx context.Context, query string, maxResults int) (string, error)
}

// DuckDuckGoClient queries the DuckDuckGo instant-answer API. No key needed.
type DuckDuckGoClient struct {
	HTTP *http.Client
}

func NewDuckDuckGoClient(timeout time.Duration) *DuckDuckGoClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DuckDuckGoClient{HTTP: &http.Client{Timeout: timeout}}
}

type ddgResponse struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	Answer        string `json:"Answer"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

func (c *DuckDuckGoClient) Search(ctx context.Context, query string, maxResults int) (string, error) {
	if maxResults <= 0 {
		maxResults = 5
	}
	endpoint := "https://api.duckduckgo.com/?format=json&no_html=1&q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search api returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var doc ddgResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("decode search response: %w", err)
	}

	var lines []string
	if doc.Answer != "" {
		lines = append(lines, doc.Answer)
	}
	if doc.AbstractText != "" {
		line := doc.AbstractText
		if doc.AbstractURL != "" {
			line += " (" + doc.AbstractURL + ")"
		}
		lines = append(lines, line)
	}
	for _, topic := range doc.RelatedTopics {
		if len(lines) >= maxResults {
			break
		}
		if topic.Text != "" {
			lines = append(lines, topic.Text)
		}
	}

	if len(lines) == 0 {
		return "No results found.", nil
	}
	return strings.Join(lines, "\n"), nil
}
