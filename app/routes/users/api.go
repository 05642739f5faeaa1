package users

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/routes/apiutil"
)

func ListUsersAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := database.GetAllUsers(db, c.Query("role"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(users)
	}
}

func GetUserAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := database.GetUserByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(user)
	}
}

// DeactivateUserAPI flags an account inactive; accounts are never deleted, so
// historical records keep a valid owner.
func DeactivateUserAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeactivateUser(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "User deactivated"})
	}
}
