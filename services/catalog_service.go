package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/saini-nikhil/MealMaster/models"
)

const catalogPageSize = 12

// The shared catalog is read-only and user-independent, so one cached
// copy serves every request until the TTL lapses.
var catalogCache sync.Map

type cachedCatalog struct {
	recipes   []models.Recipe
	fetchedAt time.Time
}

// CatalogService fetches the shared recipe collection in bulk from a
// remote JSON endpoint shaped as {"<id>": {recipe...}, ...}.
type CatalogService struct {
	url    string
	client *http.Client
	ttl    time.Duration
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		url:    os.Getenv("CATALOG_URL"),
		client: &http.Client{Timeout: 10 * time.Second},
		ttl:    5 * time.Minute,
	}
}

func NewCatalogServiceWithURL(url string) *CatalogService {
	return &CatalogService{url: url, client: &http.Client{Timeout: 10 * time.Second}, ttl: 5 * time.Minute}
}

func (s *CatalogService) Fetch() ([]models.Recipe, error) {
	if cached, ok := catalogCache.Load(s.url); ok {
		c := cached.(cachedCatalog)
		if time.Since(c.fetchedAt) < s.ttl {
			return c.recipes, nil
		}
	}

	resp, err := s.client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint error %d: %s", resp.StatusCode, string(body))
	}

	var raw map[string]models.Recipe
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(raw))
	for id, r := range raw {
		r.ID = id
		recipes = append(recipes, r)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID < recipes[j].ID })

	catalogCache.Store(s.url, cachedCatalog{recipes: recipes, fetchedAt: time.Now()})
	return recipes, nil
}

// FilterRecipes applies the diet/meal/search filters the browse page
// offers. "all" or an empty value leaves a dimension unfiltered.
func FilterRecipes(recipes []models.Recipe, diet, meal, search string) []models.Recipe {
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if diet != "" && diet != "all" && !strings.EqualFold(r.Category, diet) {
			continue
		}
		if meal != "" && meal != "all" && !strings.EqualFold(r.MealType, meal) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type CatalogPage struct {
	Recipes    []models.Recipe `json:"recipes"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

// List fetches, filters and paginates the catalog, 12 recipes a page.
func (s *CatalogService) List(diet, meal, search string, page int) (*CatalogPage, error) {
	recipes, err := s.Fetch()
	if err != nil {
		return nil, err
	}

	filtered := FilterRecipes(recipes, diet, meal, search)

	totalPages := (len(filtered) + catalogPageSize - 1) / catalogPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * catalogPageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + catalogPageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return &CatalogPage{Recipes: filtered[start:end], Page: page, TotalPages: totalPages}, nil
}
