package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"school-management-system/app/database"
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

	require.NoError(t, database.Migrate(db))
	return db
}

func seedParent(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	parent := &models.User{
		Username: "parent1",
		Email:    "parent1@example.com",
		Password: "secret-password",
		FullName: "Test Parent",
		Role:     models.RoleParent,
	}
	require.NoError(t, database.CreateUser(db, parent))
	return parent
}

func seedStudents(t *testing.T, db *gorm.DB, parentID string, n int) []*models.Student {
	t.Helper()
	students := make([]*models.Student, n)
	for i := 0; i < n; i++ {
		student := &models.Student{
			FirstName:       "Student",
			LastName:        fmt.Sprintf("Number%02d", i),
			DateOfBirth:     time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
			AdmissionNumber: fmt.Sprintf("ADM-%03d", i),
			ParentID:        parentID,
		}
		require.NoError(t, database.CreateStudent(db, student))
		students[i] = student
	}
	return students
}
