package models

import "gorm.io/gorm"

// GroceryItem is a manually added shopping-list line. Items derived
// from scheduled recipes are never persisted; they regenerate from the
// plan on each request.
type GroceryItem struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	Name    string `gorm:"not null"`
	Checked bool
}
