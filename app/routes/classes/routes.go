package classes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupClassRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/", ListClassesAPI(db))
	api.Get("/:id", GetClassAPI(db))
	api.Get("/:id/timetable", GetClassTimetableAPI(db))

	api.Post("/", auth.RoleMiddleware("admin"), CreateClassAPI(db))
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateClassAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteClassAPI(db))

	api.Post("/:id/students/:studentId", auth.RoleMiddleware("admin"), EnrollStudentAPI(db))
	api.Delete("/:id/students/:studentId", auth.RoleMiddleware("admin"), UnenrollStudentAPI(db))
}
