package materials

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupMaterialRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/materials")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/", ListMaterialsAPI(db))
	api.Get("/:id", GetMaterialAPI(db))

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), CreateMaterialAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin", "teacher"), DeleteMaterialAPI(db))
}
