package services

import (
	"fmt"
	"testing"

	"github.com/saini-nikhil/MealMaster/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FavoriteRecipe{},
		&models.MealPlanEntry{},
		&models.GroceryItem{},
		&models.NutritionLogEntry{},
		&models.CommunityPost{},
	))
	return db
}
