package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/saini-nikhil/MealMaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogStub(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	recipes := map[string]models.Recipe{
		"r1": {Name: "Veggie Bowl", Category: "vegetarian", MealType: "lunch", Calories: 400},
		"r2": {Name: "Chicken Curry", Category: "non-vegetarian", MealType: "dinner", Calories: 600},
		"r3": {Name: "Vegan Salad", Category: "vegan", MealType: "lunch", Calories: 250},
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		_ = json.NewEncoder(w).Encode(recipes)
	}))
}

func TestCatalogFetchAssignsIDs(t *testing.T) {
	srv := catalogStub(t, nil)
	defer srv.Close()

	recipes, err := NewCatalogServiceWithURL(srv.URL).Fetch()
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "r1", recipes[0].ID)
	assert.Equal(t, "Veggie Bowl", recipes[0].Name)
}

func TestCatalogFetchIsCached(t *testing.T) {
	var hits int32
	srv := catalogStub(t, &hits)
	defer srv.Close()

	svc := NewCatalogServiceWithURL(srv.URL)
	_, err := svc.Fetch()
	require.NoError(t, err)
	_, err = svc.Fetch()
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFilterRecipes(t *testing.T) {
	recipes := []models.Recipe{
		{Name: "Veggie Bowl", Category: "vegetarian", MealType: "lunch"},
		{Name: "Chicken Curry", Category: "non-vegetarian", MealType: "dinner"},
		{Name: "Vegan Salad", Category: "vegan", MealType: "lunch"},
	}

	assert.Len(t, FilterRecipes(recipes, "all", "all", ""), 3)
	assert.Len(t, FilterRecipes(recipes, "vegan", "", ""), 1)
	assert.Len(t, FilterRecipes(recipes, "", "lunch", ""), 2)

	bySearch := FilterRecipes(recipes, "", "", "curry")
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Chicken Curry", bySearch[0].Name)

	assert.Empty(t, FilterRecipes(recipes, "vegan", "dinner", ""))
}

func TestCatalogListPaginates(t *testing.T) {
	srv := catalogStub(t, nil)
	defer srv.Close()

	page, err := NewCatalogServiceWithURL(srv.URL).List("", "", "", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Recipes, 3)

	// out-of-range pages come back empty, not as an error
	page, err = NewCatalogServiceWithURL(srv.URL).List("", "", "", 5)
	require.NoError(t, err)
	assert.Empty(t, page.Recipes)
}
