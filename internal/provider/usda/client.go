package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov"

// FoodLookup is a provider-neutral nutrition record per serving.
type FoodLookup struct {
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	FiberG      float64 `json:"fiber_g"`
	FDCID       int64   `json:"fdc_id"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// SearchFoods queries FoodData Central. Authentication is a static API
// key passed as a query parameter.
func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]FoodLookup, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing USDA API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 10
	}

	payload, err := json.Marshal(map[string]any{
		"query":    strings.TrimSpace(query),
		"dataType": []string{"Branded", "Foundation", "SR Legacy"},
		"pageSize": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal USDA search payload: %w", err)
	}

	url := fmt.Sprintf("%s/fdc/v1/foods/search?api_key=%s", baseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create USDA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute USDA request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("USDA request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode USDA response: %w", err)
	}

	out := make([]FoodLookup, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		if strings.TrimSpace(f.Description) == "" {
			continue
		}
		out = append(out, mapFood(f))
	}
	return out, nil
}

func mapFood(f usdaFood) FoodLookup {
	out := FoodLookup{
		Description: strings.TrimSpace(f.Description),
		Brand:       strings.TrimSpace(f.BrandOwner),
		FDCID:       f.FDCID,
	}
	if f.ServingSize > 0 {
		out.ServingSize = fmt.Sprintf("%g %s", f.ServingSize, strings.TrimSpace(f.ServingSizeUnit))
	}
	for _, n := range f.FoodNutrients {
		switch strings.ToLower(strings.TrimSpace(n.NutrientName)) {
		case "energy":
			out.Calories = n.Value
		case "protein":
			out.ProteinG = n.Value
		case "carbohydrate, by difference":
			out.CarbsG = n.Value
		case "total lipid (fat)":
			out.FatG = n.Value
		case "fiber, total dietary":
			out.FiberG = n.Value
		}
	}
	return out
}

type searchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FDCID           int64          `json:"fdcId"`
	Description     string         `json:"description"`
	BrandOwner      string         `json:"brandOwner"`
	ServingSize     float64        `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
	FoodNutrients   []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}
