package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/douglasmelere/daily-diet-api/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// Summary aggregates a user's meals. JSON keys match the public API.
type Summary struct {
	RegisteredMeals int64 `json:"Registered Meals"`
	MealsOnTheDiet  int64 `json:"Meals On The Diet"`
	NonDietMeals    int64 `json:"Non-Diet Meals"`
}

func (s *MealService) AddMeal(userID, name, description string, isOnTheDiet bool) (*models.Meal, error) {
	meal := models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		IsOnTheDiet: isOnTheDiet,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListMeals returns the user's meals in insertion order.
func (s *MealService) ListMeals(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

// GetMeal fetches a single meal scoped to its owner. A meal that exists but
// belongs to someone else is reported exactly like one that does not exist.
func (s *MealService) GetMeal(userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal replaces all three editable fields of the scoped meal.
// It never creates a row.
func (s *MealService) UpdateMeal(userID, mealID, name, description string, isOnTheDiet bool) error {
	res := s.db.Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"isOnTheDiet": isOnTheDiet,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// DeleteMeal removes the scoped meal. Absence is detected from the affected
// row count, not a prior read.
func (s *MealService) DeleteMeal(userID, mealID string) error {
	res := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (s *MealService) GetSummary(userID string) (*Summary, error) {
	var summary Summary

	if err := s.db.Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Count(&summary.RegisteredMeals).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Meal{}).
		Where("user_id = ? AND \"isOnTheDiet\" = ?", userID, true).
		Count(&summary.MealsOnTheDiet).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Meal{}).
		Where("user_id = ? AND \"isOnTheDiet\" = ?", userID, false).
		Count(&summary.NonDietMeals).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
