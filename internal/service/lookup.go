package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/provider/openfoodfacts"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/provider/themealdb"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/provider/usda"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/provider/wger"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

// FoodSearchResult is the provider-neutral shape lookup commands print
// and food add can consume.
type FoodSearchResult struct {
	Provider    string  `json:"provider"`
	Barcode     string  `json:"barcode,omitempty"`
	Description string  `json:"description"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize string  `json:"serving_size,omitempty"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	FiberG      float64 `json:"fiber_g"`
}

// SearchFoods queries the chosen provider ("usda" or "openfoodfacts").
// An empty provider falls back to the configured default, then to
// Open Food Facts, which needs no key. "Nothing matched" is an empty
// slice with a nil error.
func SearchFoods(ctx context.Context, s *store.Store, provider, apiKey, query string, limit int) ([]FoodSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}
	provider = normalizeName(provider)
	if provider == "" {
		if configured, ok := GetConfig(s, ConfigFoodProvider); ok {
			provider = configured
		} else {
			provider = "openfoodfacts"
		}
	}

	switch provider {
	case "usda":
		if strings.TrimSpace(apiKey) == "" {
			apiKey, _ = GetConfig(s, ConfigUSDAAPIKey)
		}
		client := &usda.Client{APIKey: apiKey}
		foods, err := client.SearchFoods(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		out := make([]FoodSearchResult, 0, len(foods))
		for _, f := range foods {
			out = append(out, FoodSearchResult{
				Provider:    "usda",
				Description: f.Description,
				Brand:       f.Brand,
				ServingSize: f.ServingSize,
				Calories:    f.Calories,
				ProteinG:    f.ProteinG,
				CarbsG:      f.CarbsG,
				FatG:        f.FatG,
				FiberG:      f.FiberG,
			})
		}
		return out, nil
	case "openfoodfacts", "off":
		client := &openfoodfacts.Client{}
		foods, err := client.SearchFoods(ctx, query, limit)
		if errors.Is(err, openfoodfacts.ErrNotFound) {
			return []FoodSearchResult{}, nil
		}
		if err != nil {
			return nil, err
		}
		out := make([]FoodSearchResult, 0, len(foods))
		for _, f := range foods {
			out = append(out, mapOFF(f))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (use usda or openfoodfacts)", provider)
	}
}

// LookupBarcode resolves a product by barcode via Open Food Facts.
// Not-found is (nil, nil); the caller prints an empty-state message.
func LookupBarcode(ctx context.Context, barcode string) (*FoodSearchResult, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, fmt.Errorf("barcode is required")
	}
	client := &openfoodfacts.Client{}
	food, err := client.LookupBarcode(ctx, barcode)
	if errors.Is(err, openfoodfacts.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	result := mapOFF(food)
	return &result, nil
}

func mapOFF(f openfoodfacts.FoodLookup) FoodSearchResult {
	return FoodSearchResult{
		Provider:    "openfoodfacts",
		Barcode:     f.Barcode,
		Description: f.Description,
		Brand:       f.Brand,
		ServingSize: f.ServingSize,
		Calories:    f.Calories,
		ProteinG:    f.ProteinG,
		CarbsG:      f.CarbsG,
		FatG:        f.FatG,
		FiberG:      f.FiberG,
	}
}

// SearchRecipes proxies TheMealDB meal search.
func SearchRecipes(ctx context.Context, query string) ([]themealdb.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("recipe query is required")
	}
	client := &themealdb.Client{}
	return client.SearchRecipes(ctx, query)
}

// SearchExercises proxies the wger exercise catalog.
func SearchExercises(ctx context.Context, term string) ([]wger.Exercise, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("exercise search term is required")
	}
	client := &wger.Client{}
	return client.SearchExercises(ctx, term)
}
