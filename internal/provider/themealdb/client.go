package themealdb

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

// TheMealDB's free tier uses the shared "1" API key in the path.
const defaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Instructions string   `json:"instructions"`
	Thumbnail    string   `json:"thumbnail"`
	Ingredients  []string `json:"ingredients"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// SearchRecipes looks up meals by name. An empty result set is returned
// as an empty slice, not an error.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]Recipe, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	u := fmt.Sprintf("%s/search.php?s=%s", base, url.QueryEscape(strings.TrimSpace(query)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create themealdb request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute themealdb request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read themealdb response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("themealdb request failed with status %d", resp.StatusCode)
	}

	// meals is null (not an empty array) when nothing matches.
	var parsed struct {
		Meals []map[string]any `json:"meals"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode themealdb response: %w", err)
	}

	out := make([]Recipe, 0, len(parsed.Meals))
	for _, meal := range parsed.Meals {
		r := Recipe{
			ID:           stringField(meal, "idMeal"),
			Name:         stringField(meal, "strMeal"),
			Category:     stringField(meal, "strCategory"),
			Area:         stringField(meal, "strArea"),
			Instructions: stringField(meal, "strInstructions"),
			Thumbnail:    stringField(meal, "strMealThumb"),
			Ingredients:  collectIngredients(meal),
		}
		if r.Name == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// collectIngredients pairs the numbered strIngredientN/strMeasureN
// columns, stopping at the first empty ingredient slot.
func collectIngredients(meal map[string]any) []string {
	out := make([]string, 0)
	for i := 1; i <= 20; i++ {
		ingredient := stringField(meal, fmt.Sprintf("strIngredient%d", i))
		if ingredient == "" {
			break
		}
		measure := stringField(meal, fmt.Sprintf("strMeasure%d", i))
		if measure != "" {
			out = append(out, measure+" "+ingredient)
		} else {
			out = append(out, ingredient)
		}
	}
	return out
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
