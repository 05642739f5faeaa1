package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/register", RegisterAPI(db))
	auth.Post("/login", LoginAPI(db))
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware(db))
	auth.Get("/me", MeAPI)
	auth.Post("/change-password", ChangePasswordAPI(db))
}

// AuthMiddleware validates the JWT and loads the user into the request
// context. The user is fetched fresh so a deactivated account stops working
// before its token expires.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get JWT token from cookie or Authorization header
		tokenString := c.Cookies("jwt_token")
		if tokenString == "" {
			header := c.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}

		claims, err := ValidateJWT(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}

		user, err := database.GetUserByID(db, claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "Account is deactivated"})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_role", string(user.Role))
		c.Locals("user", user)

		return c.Next()
	}
}

// RoleMiddleware checks if the user has one of the required roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Locals("user_role").(string)
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
