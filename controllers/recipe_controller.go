package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/saini-nikhil/MealMaster/models"
	"github.com/saini-nikhil/MealMaster/services"

	"github.com/gin-gonic/gin"
)

// ListRecipes serves the shared read-only catalog with the browse
// page's diet/meal/search filters and fixed-size pagination.
func ListRecipes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	svc := services.NewCatalogService()
	result, err := svc.List(c.Query("diet"), c.Query("meal"), c.Query("search"), page)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type FavoriteInput struct {
	Recipe models.Recipe `json:"recipe" binding:"required"`
	Custom bool          `json:"custom"`
}

func AddFavorite(c *gin.Context) {
	userID := c.GetUint("userID")

	var input FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Recipe.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe name is required"})
		return
	}

	fav, err := services.NewFavoriteService().Favorite(userID, input.Recipe, input.Custom)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

func ListFavorites(c *gin.Context) {
	userID := c.GetUint("userID")

	favs, err := services.NewFavoriteService().List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, favs)
}

func RemoveFavorite(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return
	}

	err = services.NewFavoriteService().Unfavorite(userID, uint(id))
	if errors.Is(err, services.ErrFavoriteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
