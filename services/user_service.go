package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/douglasmelere/daily-diet-api/models"
	"github.com/douglasmelere/daily-diet-api/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account and returns it together with the session
// token the caller must present on /meals routes.
//
// existingToken is the sessionId cookie the request carried, if any. It is
// adopted only when it already resolves to a registered user, so a caller
// cannot plant an arbitrary token value; otherwise a fresh one is issued.
func (s *UserService) Register(name, email, address string, weight int, height float64, existingToken string) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	sessionID := ""
	if existingToken != "" {
		var owner models.User
		if err := s.db.Where("session_id = ?", existingToken).First(&owner).Error; err == nil {
			sessionID = existingToken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
	}
	if sessionID == "" {
		sessionID = utils.NewSessionToken()
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Address:   address,
		Weight:    weight,
		Height:    height,
		SessionID: &sessionID,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index on email closes the check-then-insert race:
		// a concurrent registration that slipped past the lookup above
		// still surfaces as a duplicate here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}

	return &user, sessionID, nil
}

// ListUsers returns every account, oldest first. Administrative listing,
// not scoped to a session.
func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

// FindBySession resolves a session token to its owning user.
func (s *UserService) FindBySession(sessionID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("session_id = ?", sessionID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
