package oddsapi

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

const (
	defaultBaseURL = "https://api.the-odds-api.com"
	defaultRegions = "eu"
	defaultTimeout = 10 * time.Second
)

// Client talks to the-odds-api.com v4.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, regions string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if regions == "" {
		regions = defaultRegions
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		regions:    regions,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListEvents fetches all currently offered events for one sport partition,
// with head-to-head and totals markets attached per bookmaker.
func (c *Client) ListEvents(ctx context.Context, sportKey string) ([]Event, error) {
	params := url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {c.regions},
		"markets":    {"h2h,totals"},
		"oddsFormat": {"decimal"},
	}
	u := fmt.Sprintf("%s/v4/sports/%s/odds?%s", c.baseURL, url.PathEscape(sportKey), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request odds for %s: %w", sportKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request odds for %s: unexpected status code %d", sportKey, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("unmarshal odds response: %w", err)
	}
	return events, nil
}
