package reportcards

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupReportCardRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/report-cards")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/student/:studentId", GetStudentReportCardsAPI(db))
	api.Get("/:id", GetReportCardAPI(db))

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), CreateReportCardAPI(db))
	api.Post("/:id/summaries", auth.RoleMiddleware("admin", "teacher"), AddGradeSummaryAPI(db))
	api.Put("/summaries/:summaryId", auth.RoleMiddleware("admin", "teacher"), UpdateGradeSummaryAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteReportCardAPI(db))
}
