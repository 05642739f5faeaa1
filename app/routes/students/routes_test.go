package students

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
	SetupStudentRoutes(app, db)
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

func TestStudentRoutesEnforceOwnership(t *testing.T) {
	app, db := newTestApp(t)
	owner := seedUser(t, db, models.RoleParent, "parent1")
	outsider := seedUser(t, db, models.RoleParent, "parent2")
	student := seedStudent(t, db, owner.ID, "ADM-001")

	// A student that exists but belongs to another parent reads as
	// forbidden, not missing.
	resp := getAs(t, app, outsider, "/api/students/"+student.ID)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = getAs(t, app, outsider, "/api/students/"+student.ID+"/grades")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = getAs(t, app, outsider, "/api/students/"+student.ID+"/performance")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = getAs(t, app, owner, "/api/students/"+student.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The denial touched nothing.
	kept, err := database.GetStudentByID(db, student.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, kept.ParentID)
}

func TestStudentRoutesAllowStaff(t *testing.T) {
	app, db := newTestApp(t)
	teacher := seedUser(t, db, models.RoleTeacher, "teacher1")
	parent := seedUser(t, db, models.RoleParent, "parent1")
	student := seedStudent(t, db, parent.ID, "ADM-001")

	resp := getAs(t, app, teacher, "/api/students/"+student.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = getAs(t, app, teacher, "/api/students/"+student.ID+"/attendance")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetMissingStudentIsNotFound(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedUser(t, db, models.RoleAdmin, "admin1")

	resp := getAs(t, app, admin, "/api/students/2f9b1f0e-0000-0000-0000-000000000000")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
