package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FavoriteRecipe is a per-user snapshot of a starred recipe.
// Lifecycle is create-on-favorite, delete-on-unfavorite; no update.
// Custom marks recipes the user authored rather than starred from the
// shared catalog.
type FavoriteRecipe struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	Custom bool
	Recipe datatypes.JSONType[Recipe]
}
