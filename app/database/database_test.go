package database

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"school-management-system/app/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret-password",
		FullName: "Test " + username,
		Role:     role,
	}
	require.NoError(t, CreateUser(db, user))
	return user
}

func seedStudent(t *testing.T, db *gorm.DB, parentID, admission string) *models.Student {
	t.Helper()
	student := &models.Student{
		FirstName:       "Amina",
		LastName:        "Okello",
		DateOfBirth:     time.Date(2015, 4, 12, 0, 0, 0, 0, time.UTC),
		AdmissionNumber: admission,
		ParentID:        parentID,
	}
	require.NoError(t, CreateStudent(db, student))
	return student
}

func seedTeacher(t *testing.T, db *gorm.DB, username string) *models.Teacher {
	t.Helper()
	user := seedUser(t, db, models.RoleTeacher, username)
	teacher := &models.Teacher{UserID: user.ID, Specialization: "Mathematics"}
	require.NoError(t, CreateTeacher(db, teacher))
	return teacher
}

func seedClass(t *testing.T, db *gorm.DB, teacherID, name string) *models.Class {
	t.Helper()
	class := &models.Class{Name: name, GradeLevel: "P5", TeacherID: teacherID}
	require.NoError(t, CreateClass(db, class))
	return class
}
