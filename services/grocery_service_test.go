package services

import (
	"testing"
	"time"

	"github.com/saini-nikhil/MealMaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateIngredientsSumsByName(t *testing.T) {
	recipes := []models.Recipe{
		{Name: "Dal", Ingredients: []models.Ingredient{
			{Name: "Lentils", Quantity: 100, Unit: "g"},
			{Name: "Onion", Quantity: 1, Unit: "pc"},
		}},
		{Name: "Soup", Ingredients: []models.Ingredient{
			{Name: "Onion", Quantity: 2, Unit: "pc"},
			{Name: "Carrot", Quantity: 3, Unit: "pc"},
			{Name: "Lentils", Quantity: 50, Unit: "g"},
		}},
	}

	items := AggregateIngredients(recipes)

	require.Len(t, items, 3, "each distinct name appears exactly once")

	// first-seen order of distinct names
	assert.Equal(t, "Lentils", items[0].Name)
	assert.Equal(t, "Onion", items[1].Name)
	assert.Equal(t, "Carrot", items[2].Name)

	assert.Equal(t, 150.0, items[0].Quantity)
	assert.Equal(t, 3.0, items[1].Quantity)
	assert.Equal(t, 3.0, items[2].Quantity)

	for _, it := range items {
		assert.False(t, it.Checked)
	}
}

func TestAggregateIngredientsEmpty(t *testing.T) {
	assert.Empty(t, AggregateIngredients(nil))
	assert.Empty(t, AggregateIngredients([]models.Recipe{{Name: "Bare"}}))
}

func TestDeriveFromPlan(t *testing.T) {
	db := newTestDB(t)
	plans := NewMealPlanServiceWithDB(db, nil)
	groceries := NewGroceryServiceWithDB(db, nil)
	week := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	_, err := plans.ScheduleRecipe(1, week, "Monday", "dinner", testRecipe("Khichdi"))
	require.NoError(t, err)
	_, err = plans.ScheduleRecipe(1, week, "Tuesday", "dinner", testRecipe("Khichdi"))
	require.NoError(t, err)

	// another user's plan must not leak in
	_, err = plans.ScheduleRecipe(2, week, "Monday", "dinner", testRecipe("Other"))
	require.NoError(t, err)

	items, err := groceries.DeriveFromPlan(1, week)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Rice", items[0].Name)
	assert.Equal(t, 400.0, items[0].Quantity)
	assert.Equal(t, "Lentils", items[1].Name)
	assert.Equal(t, 200.0, items[1].Quantity)
}

func TestCustomItemLifecycle(t *testing.T) {
	svc := NewGroceryServiceWithDB(newTestDB(t), nil)

	item, err := svc.AddCustomItem(1, "Milk")
	require.NoError(t, err)
	assert.False(t, item.Checked)

	toggled, err := svc.ToggleChecked(1, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Checked)

	require.NoError(t, svc.DeleteCustomItem(1, item.ID))

	// toggling a deleted item reports not-found, never silent success
	_, err = svc.ToggleChecked(1, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestAddCustomItemRequiresName(t *testing.T) {
	svc := NewGroceryServiceWithDB(newTestDB(t), nil)

	_, err := svc.AddCustomItem(1, "   ")
	assert.ErrorIs(t, err, ErrBlankItemName)
}

func TestCustomItemsAreOwnerScoped(t *testing.T) {
	svc := NewGroceryServiceWithDB(newTestDB(t), nil)

	item, err := svc.AddCustomItem(1, "Eggs")
	require.NoError(t, err)

	_, err = svc.ToggleChecked(2, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = svc.DeleteCustomItem(2, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	items, err := svc.ListCustomItems(1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
