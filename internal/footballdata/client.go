package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"matchadvisor/internal/pkg/models"
)

const (
	defaultBaseURL = "https://api.football-data.org"
	defaultTimeout = 10 * time.Second
)

// Client talks to the football-data.org v4 API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

func NewClient(baseURL, apiToken string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FixturesWindow fetches fixtures scheduled in [dateFrom, dateTo] (inclusive,
// provider-local date granularity). competition may be empty for a global
// window, or a competition code like "PL" to scope the request.
func (c *Client) FixturesWindow(ctx context.Context, dateFrom, dateTo time.Time, competition string) ([]models.Fixture, error) {
	path := "/v4/matches"
	if competition != "" {
		path = "/v4/competitions/" + url.PathEscape(competition) + "/matches"
	}
	params := url.Values{
		"dateFrom": {dateFrom.Format("2006-01-02")},
		"dateTo":   {dateTo.Format("2006-01-02")},
	}

	body, err := c.doRequest(ctx, path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp matchesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal matches response: %w", err)
	}
	return resp.fixtures(), nil
}

// HeadToHead fetches the aggregated history of past meetings for a fixture.
func (c *Client) HeadToHead(ctx context.Context, fixtureID int64, limit int) (*models.HeadToHead, error) {
	params := url.Values{"limit": {strconv.Itoa(limit)}}
	path := fmt.Sprintf("/v4/matches/%d/head2head", fixtureID)

	body, err := c.doRequest(ctx, path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp head2headResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal head2head response: %w", err)
	}
	return &models.HeadToHead{
		Matches:  resp.Aggregates.NumberOfMatches,
		HomeWins: resp.Aggregates.HomeTeam.Wins,
		Draws:    resp.Aggregates.HomeTeam.Draws,
		AwayWins: resp.Aggregates.AwayTeam.Wins,
	}, nil
}

// RecentFixtures fetches a team's most recent finished fixtures, newest first.
func (c *Client) RecentFixtures(ctx context.Context, teamID int64, limit int) ([]models.Fixture, error) {
	params := url.Values{
		"status": {"FINISHED"},
		"limit":  {strconv.Itoa(limit)},
	}
	path := fmt.Sprintf("/v4/teams/%d/matches", teamID)

	body, err := c.doRequest(ctx, path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp matchesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal team matches response: %w", err)
	}
	return resp.fixtures(), nil
}

func (c *Client) doRequest(ctx context.Context, pathAndQuery string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", pathAndQuery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request %s: unexpected status code %d", pathAndQuery, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
