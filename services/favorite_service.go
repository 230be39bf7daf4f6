package services

import (
	"errors"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite recipe not found")

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService() *FavoriteService {
	return &FavoriteService{db: config.DB}
}

func NewFavoriteServiceWithDB(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Favorite snapshots a recipe for the user. Custom marks recipes the
// user authored instead of starring from the catalog.
func (s *FavoriteService) Favorite(userID uint, recipe models.Recipe, custom bool) (*models.FavoriteRecipe, error) {
	fav := &models.FavoriteRecipe{
		UserID: userID,
		Custom: custom,
		Recipe: datatypes.NewJSONType(recipe),
	}
	if err := s.db.Create(fav).Error; err != nil {
		return nil, err
	}
	return fav, nil
}

// Unfavorite deletes the per-user record; a foreign id is reported as
// not found.
func (s *FavoriteService) Unfavorite(userID, favoriteID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", favoriteID, userID).Delete(&models.FavoriteRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *FavoriteService) List(userID uint) ([]models.FavoriteRecipe, error) {
	var favs []models.FavoriteRecipe
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&favs).Error
	return favs, err
}
