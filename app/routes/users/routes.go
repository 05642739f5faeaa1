package users

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware(db))
	api.Use(auth.RoleMiddleware("admin"))

	api.Get("/", ListUsersAPI(db))
	api.Get("/:id", GetUserAPI(db))
	api.Post("/:id/deactivate", DeactivateUserAPI(db))
}
