package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/douglasmelere/daily-diet-api/middlewares"
	"github.com/douglasmelere/daily-diet-api/models"
	"github.com/douglasmelere/daily-diet-api/services"
	"github.com/douglasmelere/daily-diet-api/utils"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60 // seconds

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type RegisterInput struct {
	Name    string   `json:"name" binding:"required"`
	Email   string   `json:"email" binding:"required,email"`
	Address string   `json:"address" binding:"required"`
	Weight  *int     `json:"weight" binding:"required"`
	Height  *float64 `json:"height" binding:"required"`
}

func (ctl *UserController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existingToken, _ := c.Cookie(middlewares.SessionCookieName)

	user, sessionID, err := ctl.users.Register(
		input.Name, input.Email, input.Address,
		*input.Weight, *input.Height, existingToken,
	)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This email has been associated with another user!"})
			return
		}
		logrus.WithError(err).Error("failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	// Only hand out a new cookie when the request didn't already carry the
	// token the account was registered under.
	if sessionID != existingToken {
		c.SetCookie(middlewares.SessionCookieName, sessionID, sessionCookieMaxAge, "/meals", "", false, true)
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}

type userEntry struct {
	models.User
	BMI float64 `json:"bmi,omitempty"`
}

func (ctl *UserController) ListUsers(c *gin.Context) {
	users, err := ctl.users.ListUsers()
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	entries := make([]userEntry, 0, len(users))
	for _, u := range users {
		entry := userEntry{User: u}
		if bmi, err := utils.CalculateBMI(u.Height, u.Weight); err == nil {
			entry.BMI = bmi
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{"users": entries})
}
