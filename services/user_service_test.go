package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasmelere/daily-diet-api/models"
)

func TestRegisterIssuesSessionToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, sessionID, err := svc.Register("Ana", "ana@example.com", "Rua A, 10", 90, 1.80, "")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	_, err = uuid.Parse(sessionID)
	assert.NoError(t, err, "session token should be a uuid")
	require.NotNil(t, user.SessionID)
	assert.Equal(t, sessionID, *user.SessionID)
}

func TestRegisterDistinctEmailsGetDistinctTokens(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, first, err := svc.Register("Ana", "ana@example.com", "Rua A, 10", 90, 1.80, "")
	require.NoError(t, err)
	_, second, err := svc.Register("Bia", "bia@example.com", "Rua B, 20", 70, 1.65, "")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, _, err := svc.Register("Ana", "ana@example.com", "Rua A, 10", 90, 1.80, "")
	require.NoError(t, err)

	_, _, err = svc.Register("Impostor", "ana@example.com", "Rua B, 20", 70, 1.65, "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "failed registration must not write a row")
}

func TestRegisterDuplicateEmailViaConstraint(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	// Insert directly, bypassing the service's pre-check, to exercise the
	// unique-index path a concurrent registration would hit.
	sid := uuid.NewString()
	require.NoError(t, db.Create(&models.User{
		ID: uuid.NewString(), Name: "Ana", Email: "ana@example.com",
		Address: "Rua A, 10", Weight: 90, Height: 1.80, SessionID: &sid,
	}).Error)

	// The pre-check sees the row, but even without it the insert would
	// conflict; either way the outcome is DuplicateEmail.
	_, _, err := svc.Register("Impostor", "ana@example.com", "Rua B, 20", 70, 1.65, "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterAdoptsTokenOfExistingSession(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, token, err := svc.Register("Ana", "ana@example.com", "Rua A, 10", 90, 1.80, "")
	require.NoError(t, err)

	second, adopted, err := svc.Register("Bia", "bia@example.com", "Rua B, 20", 70, 1.65, token)
	require.NoError(t, err)

	assert.Equal(t, token, adopted)
	require.NotNil(t, second.SessionID)
	assert.Equal(t, token, *second.SessionID)
}

func TestRegisterIgnoresPlantedToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	planted := uuid.NewString()
	user, sessionID, err := svc.Register("Ana", "ana@example.com", "Rua A, 10", 90, 1.80, planted)
	require.NoError(t, err)

	assert.NotEqual(t, planted, sessionID, "a never-issued token must not be adopted")
	require.NotNil(t, user.SessionID)
	assert.Equal(t, sessionID, *user.SessionID)
}

func TestListUsersOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	first, _ := registerTestUser(t, svc, "first@example.com")
	second, _ := registerTestUser(t, svc, "second@example.com")

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
}

func TestFindBySession(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, token := registerTestUser(t, svc, "ana@example.com")

	resolved, err := svc.FindBySession(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	_, err = svc.FindBySession(uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
