package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"school-management-system/app/config"
	"school-management-system/app/database"
	"school-management-system/app/routes/attendance"
	"school-management-system/app/routes/auth"
	"school-management-system/app/routes/classes"
	"school-management-system/app/routes/dashboard"
	"school-management-system/app/routes/events"
	"school-management-system/app/routes/fees"
	"school-management-system/app/routes/financial"
	"school-management-system/app/routes/grades"
	"school-management-system/app/routes/materials"
	"school-management-system/app/routes/messages"
	"school-management-system/app/routes/reportcards"
	"school-management-system/app/routes/students"
	"school-management-system/app/routes/teachers"
	"school-management-system/app/routes/timetable"
	"school-management-system/app/routes/users"
	"school-management-system/app/services"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	auth.SetJWTSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	scheduler := services.StartScheduler(db)
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app, db)
	users.SetupUserRoutes(app, db)
	students.SetupStudentRoutes(app, db)
	teachers.SetupTeacherRoutes(app, db)
	classes.SetupClassRoutes(app, db)
	grades.SetupGradeRoutes(app, db)
	attendance.SetupAttendanceRoutes(app, db)
	fees.SetupFeesRoutes(app, db)
	financial.SetupFinancialRoutes(app, db)
	dashboard.SetupDashboardRoutes(app, db, cfg.DemoData)
	events.SetupEventRoutes(app, db)
	messages.SetupMessageRoutes(app, db)
	timetable.SetupTimetableRoutes(app, db)
	reportcards.SetupReportCardRoutes(app, db)
	materials.SetupMaterialRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
