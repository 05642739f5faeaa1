package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, demoData bool) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware(db))
	api.Use(auth.RoleMiddleware("admin", "teacher"))

	api.Get("/summary", GetSummaryAPI(db))
	api.Get("/calendar-day", GetCalendarDayAPI(db))
	api.Get("/trends", GetTrendsAPI(db, demoData))
}
