// Package apiutil holds the response helpers shared by every route package.
package apiutil

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/authz"
	"school-management-system/app/database"
	"school-management-system/app/models"
)

// Error writes a JSON error response with the status implied by the error:
// 404 for missing records, 400 for validation and payment-rule failures, 409
// for duplicates and enrollment conflicts, 403 for authorization denials, and
// 500 for anything else.
func Error(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, database.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, database.ErrValidation),
		errors.Is(err, database.ErrInvalidAmount),
		errors.Is(err, database.ErrExceedsBalance),
		errors.Is(err, database.ErrNotEnrolled):
		status = fiber.StatusBadRequest
	case errors.Is(err, database.ErrDuplicate),
		errors.Is(err, database.ErrAlreadyEnrolled):
		status = fiber.StatusConflict
	case errors.Is(err, authz.ErrForbidden):
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// RequireStudentAccess loads a student and checks the caller may perform the
// action on it. A student that exists but belongs to another parent comes
// back as ErrForbidden, not ErrNotFound.
func RequireStudentAccess(c *fiber.Ctx, db *gorm.DB, studentID string, action authz.Action) (*models.Student, error) {
	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return nil, err
	}
	user := c.Locals("user").(*models.User)
	if err := authz.CanAccessStudent(user.Role, user.ID, student.ParentID, action); err != nil {
		return nil, err
	}
	return student, nil
}
