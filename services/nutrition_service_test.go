package services

import (
	"encoding/json"
	"math"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saini-nikhil/MealMaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, ComputeTotals(nil))
	assert.Equal(t, Totals{}, ComputeTotals([]models.NutritionLogEntry{}))
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	entries := []models.NutritionLogEntry{
		{Name: "Oats", Calories: 300, Carbs: 50, Protein: 10, Fat: 5},
		{Name: "Eggs", Calories: 150, Carbs: 1, Protein: 12, Fat: 10},
		{Name: "Rice", Calories: 200, Carbs: 45, Protein: 4, Fat: 1},
		{Name: "Curry", Calories: 350, Carbs: 20, Protein: 15, Fat: 22},
	}
	want := ComputeTotals(entries)

	shuffled := make([]models.NutritionLogEntry, len(entries))
	copy(shuffled, entries)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	assert.Equal(t, want, ComputeTotals(shuffled))
	assert.Equal(t, 1000.0, want.Calories)
	assert.Equal(t, 116.0, want.Carbs)
	assert.Equal(t, 41.0, want.Protein)
	assert.Equal(t, 38.0, want.Fat)
}

func TestComputeTotalsCoercesBadValues(t *testing.T) {
	entries := []models.NutritionLogEntry{
		{Name: "Broken", Calories: -100, Carbs: math.NaN(), Protein: math.Inf(1), Fat: 9},
		{Name: "Fine", Calories: 100, Carbs: 10, Protein: 5, Fat: 1},
	}

	got := ComputeTotals(entries)
	assert.Equal(t, Totals{Calories: 100, Carbs: 10, Protein: 5, Fat: 10}, got)
}

func TestLogListDelete(t *testing.T) {
	svc := NewNutritionServiceWithDB(newTestDB(t))

	entry, err := svc.LogMeal(1, MealInput{Name: "Oats", Calories: 300, Carbs: 50, Protein: 10, Fat: 5})
	require.NoError(t, err)

	entries, err := svc.ListMeals(1, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	totals, err := svc.Totals(1, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 300.0, totals.Calories)

	require.NoError(t, svc.DeleteMeal(1, entry.ID))

	err = svc.DeleteMeal(1, entry.ID)
	assert.ErrorIs(t, err, ErrLogEntryNotFound)

	totals, err = svc.Totals(1, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
}

func TestDayScopingIsAQueryFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionServiceWithDB(db)

	today := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	require.NoError(t, db.Create(&models.NutritionLogEntry{
		UserID: 1, Name: "Today", Calories: 400, LoggedAt: today,
	}).Error)
	require.NoError(t, db.Create(&models.NutritionLogEntry{
		UserID: 1, Name: "Yesterday", Calories: 250, LoggedAt: yesterday,
	}).Error)

	// default: all-time sum
	totals, err := svc.Totals(1, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 650.0, totals.Calories)

	// scoped: same fold over a restricted query
	totals, err = svc.Totals(1, today)
	require.NoError(t, err)
	assert.Equal(t, 400.0, totals.Calories)
}

func TestNutritionLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "banana", r.URL.Query().Get("query"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{{
				"name":                    "banana",
				"calories":                89.0,
				"carbohydrates_total_g":   23.0,
				"protein_g":               1.1,
				"fat_total_g":             0.3,
			}},
		})
	}))
	defer srv.Close()

	svc := &NutritionLookupService{baseURL: srv.URL, apiKey: "test-key", client: srv.Client()}

	facts, err := svc.Lookup("banana")
	require.NoError(t, err)
	assert.Equal(t, "banana", facts.Name)
	assert.Equal(t, 89.0, facts.Calories)
	assert.Equal(t, 23.0, facts.Carbs)
	assert.Equal(t, 1.1, facts.Protein)
	assert.Equal(t, 0.3, facts.Fat)
}

func TestNutritionLookupNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	svc := &NutritionLookupService{baseURL: srv.URL, client: srv.Client()}

	_, err := svc.Lookup("nothing")
	assert.Error(t, err)
}
