package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email              string `gorm:"uniqueIndex;not null"`
	Password           string `gorm:"not null"`
	Name               string
	DietaryPreferences datatypes.JSONSlice[string]
	FitnessGoal        string
	DailyCalorieTarget float64
	ProfilePicture     string
	SavedPosts         datatypes.JSONSlice[uint]
	ResetToken         string
	ResetTokenExp      time.Time
}
