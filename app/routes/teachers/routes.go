package teachers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupTeacherRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/", ListTeachersAPI(db))
	api.Get("/:id", GetTeacherAPI(db))
	api.Get("/:id/timetable", GetTeacherTimetableAPI(db))

	// Structural changes are admin-only.
	api.Post("/", auth.RoleMiddleware("admin"), CreateTeacherAPI(db))
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateTeacherAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteTeacherAPI(db))
}
