package messages

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupMessageRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/messages")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/", ListMessagesAPI(db))
	api.Post("/", SendMessageAPI(db))
	api.Get("/:id/thread", GetThreadAPI(db))
	api.Post("/:id/read", MarkReadAPI(db))
}
