package students

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/", ListStudentsAPI(db))
	api.Post("/", auth.RoleMiddleware("admin"), CreateStudentAPI(db))
	api.Get("/:id", GetStudentAPI(db))
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateStudentAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteStudentAPI(db))

	api.Get("/:id/grades", GetStudentGradesAPI(db))
	api.Get("/:id/attendance", GetStudentAttendanceAPI(db))
	api.Get("/:id/fees", GetStudentFeesAPI(db))
	api.Get("/:id/performance", GetStudentPerformanceAPI(db))
}
