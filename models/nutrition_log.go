package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionLogEntry is one user-recorded meal contributing to totals.
type NutritionLogEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Name     string    `gorm:"not null"`
	Calories float64
	Carbs    float64
	Protein  float64
	Fat      float64
	LoggedAt time.Time `gorm:"index;not null"`
}
