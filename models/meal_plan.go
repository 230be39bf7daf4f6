package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealPlanEntry assigns one recipe snapshot to a (week, day, meal-type)
// cell of a user's weekly calendar. Multiple entries may share a cell;
// uniqueness is intentionally not enforced.
type MealPlanEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	WeekStart time.Time `gorm:"index;not null"` // Monday of the week, truncated to YYYY-MM-DD
	Day       string    `gorm:"size:16;not null"`
	MealType  string    `gorm:"size:16;not null"`
	Recipe    datatypes.JSONType[Recipe]
}
