package financial

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupFinancialRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/financial")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/summary", auth.RoleMiddleware("admin", "teacher"), GetFeeSummaryAPI(db))
	api.Get("/status-distribution", auth.RoleMiddleware("admin", "teacher"), GetStatusDistributionAPI(db))
	api.Get("/payments-due", GetPaymentsDueAPI(db))
}
