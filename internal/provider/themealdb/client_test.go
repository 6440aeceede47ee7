package themealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchRecipesPairsIngredients(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search.php", r.URL.Path)
		require.Equal(t, "arrabiata", r.URL.Query().Get("s"))
		w.Write([]byte(`{
			"meals": [
				{
					"idMeal": "52771",
					"strMeal": "Spicy Arrabiata Penne",
					"strCategory": "Vegetarian",
					"strArea": "Italian",
					"strInstructions": "Bring a large pot of water to a boil.",
					"strMealThumb": "https://example.test/penne.jpg",
					"strIngredient1": "penne rigate",
					"strMeasure1": "1 pound",
					"strIngredient2": "olive oil",
					"strMeasure2": "1/4 cup",
					"strIngredient3": "garlic",
					"strMeasure3": "",
					"strIngredient4": "",
					"strMeasure4": "ignored past the first empty slot"
				}
			]
		}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	recipes, err := c.SearchRecipes(context.Background(), "arrabiata")
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	require.Equal(t, "52771", r.ID)
	require.Equal(t, "Spicy Arrabiata Penne", r.Name)
	require.Equal(t, "Vegetarian", r.Category)
	require.Equal(t, []string{"1 pound penne rigate", "1/4 cup olive oil", "garlic"}, r.Ingredients)
}

func TestSearchRecipesNullMeals(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals": null}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	recipes, err := c.SearchRecipes(context.Background(), "nonexistent dish")
	require.NoError(t, err)
	require.Empty(t, recipes)
}

func TestSearchRecipesServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, err := c.SearchRecipes(context.Background(), "arrabiata")
	require.Error(t, err)
}
