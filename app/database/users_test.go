package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"school-management-system/app/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)

	user := seedUser(t, db, models.RoleParent, "parent1")
	assert.NotEqual(t, "secret-password", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-password")))
	assert.True(t, user.IsActive)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)

	seedUser(t, db, models.RoleParent, "parent1")
	dup := &models.User{
		Username: "parent1",
		Email:    "other@example.com",
		Password: "secret-password",
		FullName: "Other",
		Role:     models.RoleParent,
	}
	err := CreateUser(db, dup)
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)

	user := &models.User{
		Username: "nobody",
		Email:    "nobody@example.com",
		Password: "secret-password",
		FullName: "Nobody",
		Role:     "principal",
	}
	require.ErrorIs(t, CreateUser(db, user), ErrValidation)
}

func TestDeactivateUserHidesFromLogin(t *testing.T) {
	db := newTestDB(t)

	user := seedUser(t, db, models.RoleTeacher, "teacher1")
	require.NoError(t, DeactivateUser(db, user.ID))

	_, err := GetUserByUsername(db, "teacher1")
	assert.ErrorIs(t, err, ErrNotFound)

	// The record itself survives.
	byID, err := GetUserByID(db, user.ID)
	require.NoError(t, err)
	assert.False(t, byID.IsActive)
}
