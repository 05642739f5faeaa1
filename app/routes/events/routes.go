package events

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupEventRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/", ListEventsAPI(db))
	api.Get("/upcoming", GetUpcomingEventsAPI(db))
	api.Get("/:id", GetEventAPI(db))

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), CreateEventAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteEventAPI(db))
}
