package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/saini-nikhil/MealMaster/services"

	"github.com/gin-gonic/gin"
)

// parseDate reads the optional ?date=YYYY-MM-DD filter. An empty value
// yields the zero time, which means no day restriction.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

func LogMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.NewNutritionService().LogMeal(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func ListLoggedMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entries, err := services.NewNutritionService().ListMeals(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func NutritionTotals(c *gin.Context) {
	userID := c.GetUint("userID")

	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	totals, err := services.NewNutritionService().Totals(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func DeleteLoggedMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	err = services.NewNutritionService().DeleteMeal(userID, uint(id))
	if errors.Is(err, services.ErrLogEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry removed"})
}

// LookupNutrition proxies the external nutrition-facts API for form
// prefill.
func LookupNutrition(c *gin.Context) {
	facts, err := services.NewNutritionLookupService().Lookup(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, facts)
}
