package models

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is a catalog entry or a user-authored recipe. Catalog recipes
// are immutable once fetched; per-user copies are stored as snapshots
// inside FavoriteRecipe and MealPlanEntry rows.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`  // vegetarian | vegan | non-vegetarian | gluten-free | ...
	MealType     string       `json:"meal_type"` // breakfast | lunch | dinner
	Calories     float64      `json:"calories"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
}
