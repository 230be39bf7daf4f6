package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Comment struct {
	UserID    uint      `json:"user_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommunityPost is a recipe shared on the community feed. Comments live
// embedded in the post rather than in their own table.
type CommunityPost struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	Author       string
	Title        string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	Ingredients  string `gorm:"type:text"`
	Instructions string `gorm:"type:text"`
	CookingTime  string
	Servings     string
	ImageURL     string
	Saves        int
	Comments     datatypes.JSONSlice[Comment]
}
