package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

func RegisterAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type RegisterRequest struct {
			Username string `json:"username" validate:"required,min=3"`
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required,min=8"`
			FullName string `json:"full_name" validate:"required"`
			Role     string `json:"role" validate:"required"`
		}

		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		user := &models.User{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Role:     models.UserRole(req.Role),
		}
		if err := database.CreateUser(db, user); err != nil {
			return apiutil.Error(c, err)
		}

		return c.Status(201).JSON(user)
	}
}

func LoginAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginRequest struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}

		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}

		user, err := database.GetUserByUsername(db, req.Username)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		if !CheckPasswordHash(req.Password, user.Password) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		token, err := GenerateJWT(user.ID, user.Username, string(user.Role))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}

		// Set JWT as HTTP-only cookie
		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    token,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return c.JSON(fiber.Map{
			"access_token": token,
			"token_type":   "bearer",
			"user":         user,
		})
	}
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func MeAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(user)
}

func ChangePasswordAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type ChangePasswordRequest struct {
			CurrentPassword string `json:"current_password" validate:"required"`
			NewPassword     string `json:"new_password" validate:"required,min=8"`
		}

		var req ChangePasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		user := c.Locals("user").(*models.User)
		if !CheckPasswordHash(req.CurrentPassword, user.Password) {
			return apiutil.BadRequest(c, "Current password is incorrect")
		}

		if err := database.UpdateUserPassword(db, user.ID, req.NewPassword); err != nil {
			return apiutil.Error(c, err)
		}

		return c.JSON(fiber.Map{"message": "Password changed successfully"})
	}
}
