package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/douglasmelere/daily-diet-api/models"
)

// setupTestDB opens a private in-memory database per test. cache=shared keeps
// the database alive across the connections gorm may open.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// registerTestUser is shared by the meal tests, which need an owner row.
func registerTestUser(t *testing.T, svc *UserService, email string) (*models.User, string) {
	t.Helper()

	user, sessionID, err := svc.Register("Test User", email, "Nowhere St. 1", 90, 1.80, "")
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	return user, sessionID
}
