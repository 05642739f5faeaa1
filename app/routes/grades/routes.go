package grades

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupGradeRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware(db))

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), RecordGradeAPI(db))
	api.Get("/distribution", auth.RoleMiddleware("admin", "teacher"), GetGradeDistributionAPI(db))
	api.Get("/subjects", auth.RoleMiddleware("admin", "teacher"), GetSubjectPerformanceAPI(db))
}
