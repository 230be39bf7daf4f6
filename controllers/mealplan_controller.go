package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/saini-nikhil/MealMaster/models"
	"github.com/saini-nikhil/MealMaster/services"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	Plans *services.MealPlanService
}

func NewMealPlanController(plans *services.MealPlanService) *MealPlanController {
	return &MealPlanController{Plans: plans}
}

// parseWeekStart reads an optional YYYY-MM-DD value; any date within
// the week is accepted and normalized to its Monday. An empty value
// means the current week.
func parseWeekStart(raw string) (time.Time, error) {
	if raw == "" {
		return services.WeekStart(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return services.WeekStart(t), nil
}

type ScheduleInput struct {
	WeekStart string        `json:"week_start"`
	Day       string        `json:"day" binding:"required"`
	MealType  string        `json:"meal_type" binding:"required"`
	Recipe    models.Recipe `json:"recipe" binding:"required"`
}

func (mc *MealPlanController) Schedule(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekStart, err := parseWeekStart(input.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	entry, err := mc.Plans.ScheduleRecipe(userID, weekStart, input.Day, input.MealType, input.Recipe)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (mc *MealPlanController) Unschedule(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	err = mc.Plans.UnscheduleRecipe(userID, uint(id))
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry removed"})
}

func (mc *MealPlanController) ListWeek(c *gin.Context) {
	userID := c.GetUint("userID")

	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	entries, err := mc.Plans.ListWeek(userID, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"week_start": weekStart.Format("2006-01-02"), "entries": entries})
}

func (mc *MealPlanController) ListCell(c *gin.Context) {
	userID := c.GetUint("userID")

	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	entries, err := mc.Plans.ListEntriesForCell(userID, weekStart, c.Query("day"), c.Query("meal_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

type DragInput struct {
	Recipe models.Recipe `json:"recipe" binding:"required"`
}

func (mc *MealPlanController) BeginDrag(c *gin.Context) {
	userID := c.GetUint("userID")

	var input DragInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mc.Plans.BeginDrag(userID, input.Recipe)
	c.JSON(http.StatusOK, gin.H{"message": "drag started"})
}

type DropInput struct {
	WeekStart string `json:"week_start"`
	Day       string `json:"day" binding:"required"`
	MealType  string `json:"meal_type" binding:"required"`
}

func (mc *MealPlanController) DropOnCell(c *gin.Context) {
	userID := c.GetUint("userID")

	var input DropInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekStart, err := parseWeekStart(input.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
		return
	}

	entry, err := mc.Plans.DropOnCell(userID, weekStart, input.Day, input.MealType)
	if errors.Is(err, services.ErrNoDraggedRecipe) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
