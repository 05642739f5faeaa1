package grades

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	SetupGradeRoutes(app, db)
	return app, db
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
	require.NoError(t, database.CreateUser(db, user))
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
	require.NoError(t, database.CreateStudent(db, student))
	return student
}

func getAs(t *testing.T, app *fiber.App, user *models.User, path string) *http.Response {
	t.Helper()
	token, err := auth.GenerateJWT(user.ID, user.Username, string(user.Role))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGradeAnalyticsDenyParents(t *testing.T) {
	app, db := newTestApp(t)
	caller := seedUser(t, db, models.RoleParent, "parent1")
	other := seedUser(t, db, models.RoleParent, "parent2")
	student := seedStudent(t, db, other.ID, "ADM-001")
	require.NoError(t, database.CreateGrade(db, &models.Grade{
		StudentID:    student.ID,
		Subject:      "Mathematics",
		Score:        91,
		Term:         "Term 1",
		DateRecorded: time.Now(),
	}))

	// A parent cannot read aggregates, not even scoped to another family's
	// student picked via the query string.
	resp := getAs(t, app, caller, "/api/grades/subjects?student_id="+student.ID)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = getAs(t, app, caller, "/api/grades/distribution?student_id="+student.ID)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = getAs(t, app, caller, "/api/grades/distribution")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGradeAnalyticsAllowStaff(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedUser(t, db, models.RoleAdmin, "admin1")
	teacher := seedUser(t, db, models.RoleTeacher, "teacher1")
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	resp := getAs(t, app, teacher, "/api/grades/subjects?student_id="+student.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = getAs(t, app, admin, "/api/grades/distribution")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGradeAnalyticsRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/grades/distribution", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
