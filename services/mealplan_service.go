package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var MealTypes = []string{"breakfast", "lunch", "dinner"}

var (
	ErrEntryNotFound   = errors.New("meal plan entry not found")
	ErrNoDraggedRecipe = errors.New("no recipe is being dragged")
)

// WeekStart walks back from t to the most recent Monday and truncates
// to midnight. A Monday maps to itself.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

func validateCell(day, mealType string) error {
	if !contains(Days, day) {
		return fmt.Errorf("unknown day %q", day)
	}
	if !contains(MealTypes, mealType) {
		return fmt.Errorf("unknown meal type %q", mealType)
	}
	return nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// MealPlanService owns the weekly grid: 7 named days by 3 meal types,
// one week per Monday date. A cell may hold any number of entries;
// scheduling the same recipe twice stacks two entries.
type MealPlanService struct {
	db  *gorm.DB
	hub *RealtimeHub

	mu       sync.Mutex
	dragging map[uint]models.Recipe
}

func NewMealPlanService(hub *RealtimeHub) *MealPlanService {
	return &MealPlanService{db: config.DB, hub: hub, dragging: make(map[uint]models.Recipe)}
}

// NewMealPlanServiceWithDB is used by tests.
func NewMealPlanServiceWithDB(db *gorm.DB, hub *RealtimeHub) *MealPlanService {
	return &MealPlanService{db: db, hub: hub, dragging: make(map[uint]models.Recipe)}
}

func (s *MealPlanService) ScheduleRecipe(userID uint, weekStart time.Time, day, mealType string, recipe models.Recipe) (*models.MealPlanEntry, error) {
	if err := validateCell(day, mealType); err != nil {
		return nil, err
	}

	entry := &models.MealPlanEntry{
		UserID:    userID,
		WeekStart: WeekStart(weekStart),
		Day:       day,
		MealType:  mealType,
		Recipe:    datatypes.NewJSONType(recipe),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	s.notify(userID)
	return entry, nil
}

// UnscheduleRecipe deletes a single entry by id. An id that does not
// belong to the caller is an authorization failure, not a silent noop.
func (s *MealPlanService) UnscheduleRecipe(userID, entryID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.MealPlanEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}

	s.notify(userID)
	return nil
}

// ListEntriesForCell returns the cell's entries in insertion order.
func (s *MealPlanService) ListEntriesForCell(userID uint, weekStart time.Time, day, mealType string) ([]models.MealPlanEntry, error) {
	if err := validateCell(day, mealType); err != nil {
		return nil, err
	}
	var entries []models.MealPlanEntry
	err := s.db.
		Where("user_id = ? AND week_start = ? AND day = ? AND meal_type = ?",
			userID, WeekStart(weekStart), day, mealType).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// ListWeek returns all of a week's entries for rendering the 21 cells.
func (s *MealPlanService) ListWeek(userID uint, weekStart time.Time) ([]models.MealPlanEntry, error) {
	var entries []models.MealPlanEntry
	err := s.db.
		Where("user_id = ? AND week_start = ?", userID, WeekStart(weekStart)).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// BeginDrag captures the recipe a user started dragging.
func (s *MealPlanService) BeginDrag(userID uint, recipe models.Recipe) {
	s.mu.Lock()
	s.dragging[userID] = recipe
	s.mu.Unlock()
}

// DropOnCell schedules the captured recipe into the target cell. The
// transient drag state is cleared whether or not the write succeeds;
// the write result is still reported to the caller.
func (s *MealPlanService) DropOnCell(userID uint, weekStart time.Time, day, mealType string) (*models.MealPlanEntry, error) {
	s.mu.Lock()
	recipe, ok := s.dragging[userID]
	delete(s.dragging, userID)
	s.mu.Unlock()

	if !ok {
		return nil, ErrNoDraggedRecipe
	}
	return s.ScheduleRecipe(userID, weekStart, day, mealType, recipe)
}

func (s *MealPlanService) notify(userID uint) {
	if s.hub != nil {
		s.hub.Broadcast(userID, "mealplan.updated", nil)
	}
}
