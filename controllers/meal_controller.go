package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/douglasmelere/daily-diet-api/services"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

type MealInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	// pointer so a missing boolean fails validation instead of
	// silently defaulting to false
	IsOnTheDiet *bool `json:"isOnTheDiet" binding:"required"`
}

// mealID validates the :id route param before it reaches storage.
func mealID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return "", false
	}
	return id, true
}

func (ctl *MealController) LogMeal(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	if _, err := ctl.meals.AddMeal(userID, input.Name, input.Description, *input.IsOnTheDiet); err != nil {
		logrus.WithError(err).Error("failed to create meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.Status(http.StatusCreated)
}

func (ctl *MealController) ListMeals(c *gin.Context) {
	userID := c.GetString("userID")

	meals, err := ctl.meals.ListMeals(userID)
	if err != nil {
		logrus.WithError(err).Error("failed to list meals")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userMeals": meals})
}

func (ctl *MealController) GetMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}
	userID := c.GetString("userID")

	meal, err := ctl.meals.GetMeal(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		logrus.WithError(err).Error("failed to fetch meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (ctl *MealController) UpdateMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	err := ctl.meals.UpdateMeal(userID, id, input.Name, input.Description, *input.IsOnTheDiet)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found!"})
			return
		}
		logrus.WithError(err).Error("failed to update meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.Status(http.StatusAccepted)
}

func (ctl *MealController) DeleteMeal(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	userID := c.GetString("userID")
	if err := ctl.meals.DeleteMeal(userID, id); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found!"})
			return
		}
		logrus.WithError(err).Error("failed to delete meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Meal has been deleted"})
}

func (ctl *MealController) Summary(c *gin.Context) {
	userID := c.GetString("userID")

	summary, err := ctl.meals.GetSummary(userID)
	if err != nil {
		logrus.WithError(err).Error("failed to build meal summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
