package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/models"

	"gorm.io/gorm"
)

var ErrLogEntryNotFound = errors.New("nutrition log entry not found")

// Totals is a user's accumulated macro/calorie sums.
type Totals struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// ComputeTotals folds the entries into per-macro sums. Negative or
// non-finite stored values coerce to 0 instead of raising an error, so
// the fold is order-independent and an empty input yields zero totals.
func ComputeTotals(entries []models.NutritionLogEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += coerce(e.Calories)
		t.Carbs += coerce(e.Carbs)
		t.Protein += coerce(e.Protein)
		t.Fat += coerce(e.Fat)
	}
	return t
}

func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService() *NutritionService {
	return &NutritionService{db: config.DB}
}

func NewNutritionServiceWithDB(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

type MealInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"required"`
	Carbs    float64 `json:"carbs" binding:"required"`
	Protein  float64 `json:"protein" binding:"required"`
	Fat      float64 `json:"fat" binding:"required"`
}

func (s *NutritionService) LogMeal(userID uint, in MealInput) (*models.NutritionLogEntry, error) {
	entry := &models.NutritionLogEntry{
		UserID:   userID,
		Name:     in.Name,
		Calories: in.Calories,
		Carbs:    in.Carbs,
		Protein:  in.Protein,
		Fat:      in.Fat,
		LoggedAt: time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListMeals returns all of a user's entries. Day scoping is a query
// filter applied here, not a different accumulation algorithm: pass a
// non-zero date to restrict to [startOfDay, startOfDay+24h).
func (s *NutritionService) ListMeals(userID uint, date time.Time) ([]models.NutritionLogEntry, error) {
	q := s.db.Where("user_id = ?", userID).Order("id ASC")
	if !date.IsZero() {
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		q = q.Where("logged_at >= ? AND logged_at < ?", start, start.Add(24*time.Hour))
	}

	var entries []models.NutritionLogEntry
	err := q.Find(&entries).Error
	return entries, err
}

func (s *NutritionService) Totals(userID uint, date time.Time) (Totals, error) {
	entries, err := s.ListMeals(userID, date)
	if err != nil {
		return Totals{}, err
	}
	return ComputeTotals(entries), nil
}

func (s *NutritionService) DeleteMeal(userID, entryID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.NutritionLogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLogEntryNotFound
	}
	return nil
}

// NutritionLookupService proxies the external nutrition-facts API so
// the client can prefill the log form from a food name.
type NutritionLookupService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewNutritionLookupService() *NutritionLookupService {
	base := os.Getenv("NUTRITION_API_URL")
	if base == "" {
		base = "https://api.calorieninjas.com/v1/nutrition"
	}
	return &NutritionLookupService{
		baseURL: base,
		apiKey:  os.Getenv("NUTRITION_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type NutritionFacts struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

type lookupResponse struct {
	Items []struct {
		Name          string  `json:"name"`
		Calories      float64 `json:"calories"`
		CarbsTotalG   float64 `json:"carbohydrates_total_g"`
		ProteinG      float64 `json:"protein_g"`
		FatTotalG     float64 `json:"fat_total_g"`
	} `json:"items"`
}

// Lookup returns the facts for the first item matching the query.
func (s *NutritionLookupService) Lookup(query string) (*NutritionFacts, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is required")
	}

	req, err := http.NewRequest("GET", fmt.Sprintf("%s?query=%s", s.baseURL, url.QueryEscape(query)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var lr lookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}
	if len(lr.Items) == 0 {
		return nil, fmt.Errorf("no nutrition data found for %q", query)
	}

	first := lr.Items[0]
	return &NutritionFacts{
		Name:     first.Name,
		Calories: first.Calories,
		Carbs:    first.CarbsTotalG,
		Protein:  first.ProteinG,
		Fat:      first.FatTotalG,
	}, nil
}
