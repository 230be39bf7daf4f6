package services

import (
	"errors"
	"strings"
	"time"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/models"

	"gorm.io/gorm"
)

var (
	ErrBlankItemName = errors.New("item name must not be blank")
	ErrItemNotFound  = errors.New("grocery item not found")
)

// DerivedItem is one aggregated shopping-list line computed from the
// scheduled recipes. Derived items are never persisted; they
// regenerate from the plan on every request.
type DerivedItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Checked  bool    `json:"checked"`
}

type GroceryService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewGroceryService(hub *RealtimeHub) *GroceryService {
	return &GroceryService{db: config.DB, hub: hub}
}

func NewGroceryServiceWithDB(db *gorm.DB, hub *RealtimeHub) *GroceryService {
	return &GroceryService{db: db, hub: hub}
}

// AggregateIngredients folds recipe ingredient lists into a flat list.
// An ingredient name already seen gets its quantity added to the
// existing line (numeric addition, no unit conversion); output order is
// first-seen order of distinct names.
func AggregateIngredients(recipes []models.Recipe) []DerivedItem {
	items := make([]DerivedItem, 0)
	index := make(map[string]int)

	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if i, ok := index[ing.Name]; ok {
				items[i].Quantity += ing.Quantity
				continue
			}
			index[ing.Name] = len(items)
			items = append(items, DerivedItem{
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
				Checked:  false,
			})
		}
	}
	return items
}

// DeriveFromPlan aggregates the ingredients of everything scheduled in
// the given week.
func (s *GroceryService) DeriveFromPlan(userID uint, weekStart time.Time) ([]DerivedItem, error) {
	var entries []models.MealPlanEntry
	err := s.db.
		Where("user_id = ? AND week_start = ?", userID, WeekStart(weekStart)).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(entries))
	for _, e := range entries {
		recipes = append(recipes, e.Recipe.Data())
	}
	return AggregateIngredients(recipes), nil
}

func (s *GroceryService) AddCustomItem(userID uint, name string) (*models.GroceryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankItemName
	}

	item := &models.GroceryItem{UserID: userID, Name: name, Checked: false}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}

	s.notify(userID)
	return item, nil
}

func (s *GroceryService) ListCustomItems(userID uint) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error
	return items, err
}

// ToggleChecked flips a persisted custom item and writes it back. A
// missing or foreign id reports not-found rather than silently
// succeeding.
func (s *GroceryService) ToggleChecked(userID, itemID uint) (*models.GroceryItem, error) {
	var item models.GroceryItem
	err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	item.Checked = !item.Checked
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}

	s.notify(userID)
	return &item, nil
}

func (s *GroceryService) DeleteCustomItem(userID, itemID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.GroceryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}

	s.notify(userID)
	return nil
}

func (s *GroceryService) notify(userID uint) {
	if s.hub != nil {
		s.hub.Broadcast(userID, "grocery.updated", nil)
	}
}
