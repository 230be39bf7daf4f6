package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saini-nikhil/MealMaster/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"r1": {"name": "Oat Porridge", "category": "vegan", "meal_type": "breakfast", "calories": 300},
			"r2": {"name": "Paneer Wrap", "category": "vegetarian", "meal_type": "lunch", "calories": 450},
			"r3": {"name": "Grilled Chicken", "category": "non-vegetarian", "meal_type": "dinner", "calories": 500}
		}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListRecipesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := catalogStub(t)
	t.Setenv("CATALOG_URL", srv.URL)

	r := gin.New()
	r.GET("/recipes", ListRecipes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/recipes?diet=vegan", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var page services.CatalogPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Recipes, 1)
	assert.Equal(t, "Oat Porridge", page.Recipes[0].Name)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
}

func TestListRecipesHandlerUpstreamDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("CATALOG_URL", srv.URL)

	r := gin.New()
	r.GET("/recipes", ListRecipes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/recipes", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
