package fees

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/", auth.RoleMiddleware("admin", "teacher"), ListFeesAPI(db))
	api.Post("/", auth.RoleMiddleware("admin"), CreateFeeAPI(db))
	api.Get("/:id", GetFeeAPI(db))
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateFeeAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteFeeAPI(db))
	api.Post("/:id/pay", auth.RoleMiddleware("admin"), RecordPaymentAPI(db))
}
