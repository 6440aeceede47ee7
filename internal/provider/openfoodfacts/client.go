package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// ErrNotFound reports a barcode or query with no matching product. The
// caller surfaces this as an empty result, not a failure.
var ErrNotFound = errors.New("openfoodfacts: product not found")

type FoodLookup struct {
	Barcode     string  `json:"barcode"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	FiberG      float64 `json:"fiber_g"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) LookupBarcode(ctx context.Context, barcode string) (FoodLookup, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL(), url.PathEscape(strings.TrimSpace(barcode)))
	var parsed productResponse
	if err := c.getJSON(ctx, u, &parsed); err != nil {
		return FoodLookup{}, err
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return FoodLookup{}, fmt.Errorf("barcode %q: %w", barcode, ErrNotFound)
	}
	out := mapProduct(parsed.Product)
	out.Barcode = strings.TrimSpace(barcode)
	return out, nil
}

func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]FoodLookup, error) {
	if limit <= 0 {
		limit = 10
	}
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		c.baseURL(), url.QueryEscape(strings.TrimSpace(query)), limit)
	var parsed searchResponse
	if err := c.getJSON(ctx, u, &parsed); err != nil {
		return nil, err
	}
	out := make([]FoodLookup, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		item := mapProduct(p)
		item.Barcode = strings.TrimSpace(p.Code)
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("query %q: %w", query, ErrNotFound)
	}
	return out, nil
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "vitalsync-cli/1.0 (+https://github.com/JBLinx-Studio/vitalsync-cli)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	return nil
}

func mapProduct(p offProduct) FoodLookup {
	return FoodLookup{
		Description: strings.TrimSpace(p.ProductName),
		Brand:       strings.TrimSpace(p.Brands),
		ServingSize: strings.TrimSpace(p.ServingSize),
		Calories:    nutrientValue(p.Nutriments, "energy-kcal"),
		ProteinG:    nutrientValue(p.Nutriments, "proteins"),
		CarbsG:      nutrientValue(p.Nutriments, "carbohydrates"),
		FatG:        nutrientValue(p.Nutriments, "fat"),
		FiberG:      nutrientValue(p.Nutriments, "fiber"),
	}
}

// nutrientValue prefers per-serving values and falls back to per-100g.
// Open Food Facts mixes numbers and numeric strings in nutriments.
func nutrientValue(n map[string]any, base string) float64 {
	for _, key := range []string{base + "_serving", base + "_100g"} {
		if v, ok := parseFloatAny(n[key]); ok {
			return v
		}
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

type productResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type searchResponse struct {
	Products []offProduct `json:"products"`
}

type offProduct struct {
	Code        string         `json:"code"`
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	ServingSize string         `json:"serving_size"`
	Nutriments  map[string]any `json:"nutriments"`
}
