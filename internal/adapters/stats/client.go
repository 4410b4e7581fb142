package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type httpClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient returns a StatsClient for the statistics service at baseURL.
func NewHTTPClient(client *http.Client, baseURL string) domain.StatsClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type hitPayload struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

func (c *httpClient) Hit(ctx context.Context, hit domain.Hit) error {
	body, err := json.Marshal(hitPayload{
		App:       hit.App,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: hit.Timestamp.Format(domain.TimeLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to encode hit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send hit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("stats service returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *httpClient) Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	q := url.Values{}
	q.Set("start", start.Format(domain.TimeLayout))
	q.Set("end", end.Format(domain.TimeLayout))
	q.Set("unique", strconv.FormatBool(unique))
	for _, u := range uris {
		q.Add("uris", u)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats service returned status: %d", resp.StatusCode)
	}

	var data []domain.ViewStats
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return data, nil
}
