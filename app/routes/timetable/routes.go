package timetable

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware(db))

	api.Get("/:id", GetTimeSlotAPI(db))
	api.Post("/", auth.RoleMiddleware("admin"), CreateTimeSlotAPI(db))
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteTimeSlotAPI(db))
}
