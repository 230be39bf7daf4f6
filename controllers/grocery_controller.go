package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroceryController struct {
	Groceries *services.GroceryService
	Assistant *services.AssistantService
}

func NewGroceryController(groceries *services.GroceryService, assistant *services.AssistantService) *GroceryController {
	return &GroceryController{Groceries: groceries, Assistant: assistant}
}

// Derive aggregates the week's scheduled recipes into a flat list.
// Nothing is persisted; the list regenerates on every call.
func (gc *GroceryController) Derive(c *gin.Context) {
	userID := c.GetUint("userID")

	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	items, err := gc.Groceries.DeriveFromPlan(userID, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type GenerateInput struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Generate runs the free-text extraction mode: the model turns a meal
// description into a recipe plus grocery items. Failures are
// recoverable: the caller always receives a list (possibly empty) and
// an error message instead of a dropped request.
func (gc *GroceryController) Generate(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen, err := gc.Assistant.GenerateRecipe(input.Prompt)
	if err != nil {
		config.Log.Warn("grocery generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":        err.Error(),
			"recipe":       "",
			"groceryItems": gen.GroceryItems,
		})
		return
	}

	c.JSON(http.StatusOK, gen)
}

type CustomItemInput struct {
	Name string `json:"name" binding:"required"`
}

func (gc *GroceryController) AddCustomItem(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CustomItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := gc.Groceries.AddCustomItem(userID, input.Name)
	if errors.Is(err, services.ErrBlankItemName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (gc *GroceryController) ListCustomItems(c *gin.Context) {
	userID := c.GetUint("userID")

	items, err := gc.Groceries.ListCustomItems(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (gc *GroceryController) ToggleChecked(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := gc.Groceries.ToggleChecked(userID, uint(id))
	if errors.Is(err, services.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (gc *GroceryController) DeleteCustomItem(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	err = gc.Groceries.DeleteCustomItem(userID, uint(id))
	if errors.Is(err, services.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
