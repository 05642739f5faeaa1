package classes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

// ClassRequest is the create/update payload.
type ClassRequest struct {
	Name       string `json:"name" validate:"required"`
	GradeLevel string `json:"grade_level" validate:"required"`
	TeacherID  string `json:"teacher_id" validate:"required,uuid"`
}

func ListClassesAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		offset := c.QueryInt("offset", 0)
		classes, err := database.GetAllClasses(db, limit, offset)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(classes)
	}
}

func GetClassAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		class, err := database.GetClassByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(class)
	}
}

func CreateClassAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ClassRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		class := &models.Class{Name: req.Name, GradeLevel: req.GradeLevel, TeacherID: req.TeacherID}
		if err := database.CreateClass(db, class); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(class)
	}
}

func UpdateClassAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ClassRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		class := &models.Class{
			ID:         c.Params("id"),
			Name:       req.Name,
			GradeLevel: req.GradeLevel,
			TeacherID:  req.TeacherID,
		}
		if err := database.UpdateClass(db, class); err != nil {
			return apiutil.Error(c, err)
		}
		updated, err := database.GetClassByID(db, class.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteClassAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteClass(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Class deleted"})
	}
}

func EnrollStudentAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.AddStudentToClass(db, c.Params("id"), c.Params("studentId")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"message": "Student enrolled"})
	}
}

func UnenrollStudentAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.RemoveStudentFromClass(db, c.Params("id"), c.Params("studentId")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Student removed"})
	}
}

func GetClassTimetableAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := database.GetClassByID(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		slots, err := database.GetTimeSlotsByClass(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(slots)
	}
}
