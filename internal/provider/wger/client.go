package wger

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

const defaultBaseURL = "https://wger.de"

type Exercise struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// SearchExercises queries the wger exercise catalog. No result is an
// empty slice.
func (c *Client) SearchExercises(ctx context.Context, term string) ([]Exercise, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	u := fmt.Sprintf("%s/api/v2/exercise/search/?term=%s&language=english&format=json",
		base, url.QueryEscape(strings.TrimSpace(term)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create wger request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute wger request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read wger response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wger request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode wger response: %w", err)
	}

	out := make([]Exercise, 0, len(parsed.Suggestions))
	for _, s := range parsed.Suggestions {
		name := strings.TrimSpace(s.Data.Name)
		if name == "" {
			name = strings.TrimSpace(s.Value)
		}
		if name == "" {
			continue
		}
		out = append(out, Exercise{
			ID:       s.Data.ID,
			Name:     name,
			Category: strings.TrimSpace(s.Data.Category),
			Image:    strings.TrimSpace(s.Data.Image),
		})
	}
	return out, nil
}

type searchResponse struct {
	Suggestions []suggestion `json:"suggestions"`
}

type suggestion struct {
	Value string         `json:"value"`
	Data  suggestionData `json:"data"`
}

type suggestionData struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}
