package attendance

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware(db))

	// Recording is staff-only; parents read through the student routes.
	api.Post("/", auth.RoleMiddleware("admin", "teacher"), RecordAttendanceAPI(db))
	api.Post("/batch", auth.RoleMiddleware("admin", "teacher"), BatchRecordAttendanceAPI(db))
	api.Get("/date/:date", auth.RoleMiddleware("admin", "teacher"), GetAttendanceByDateAPI(db))
	api.Get("/history", auth.RoleMiddleware("admin", "teacher"), GetAttendanceHistoryAPI(db))
	api.Get("/stats", auth.RoleMiddleware("admin", "teacher"), GetAttendanceStatsAPI(db))
}
