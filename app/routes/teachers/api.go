package teachers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

func ListTeachersAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		offset := c.QueryInt("offset", 0)
		teachers, err := database.GetAllTeachers(db, limit, offset)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(teachers)
	}
}

func GetTeacherAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacher, err := database.GetTeacherByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(teacher)
	}
}

func CreateTeacherAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type TeacherRequest struct {
			UserID         string `json:"user_id" validate:"required,uuid"`
			Specialization string `json:"specialization" validate:"required"`
		}

		var req TeacherRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		teacher := &models.Teacher{UserID: req.UserID, Specialization: req.Specialization}
		if err := database.CreateTeacher(db, teacher); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(teacher)
	}
}

func UpdateTeacherAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type UpdateRequest struct {
			Specialization string `json:"specialization" validate:"required"`
		}

		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		if err := database.UpdateTeacher(db, c.Params("id"), req.Specialization); err != nil {
			return apiutil.Error(c, err)
		}
		teacher, err := database.GetTeacherByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(teacher)
	}
}

func DeleteTeacherAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteTeacher(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Teacher deleted"})
	}
}

// GetTeacherTimetableAPI returns a teacher's lessons for one weekday, or the
// whole week when no day is given.
func GetTeacherTimetableAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacherID := c.Params("id")
		if _, err := database.GetTeacherByID(db, teacherID); err != nil {
			return apiutil.Error(c, err)
		}

		if day := c.QueryInt("day", -1); day >= 0 {
			slots, err := database.GetTimeSlotsByTeacherAndDay(db, teacherID, day)
			if err != nil {
				return apiutil.Error(c, err)
			}
			return c.JSON(slots)
		}

		week := make([][]*models.TimeSlot, 7)
		for day := 0; day < 7; day++ {
			slots, err := database.GetTimeSlotsByTeacherAndDay(db, teacherID, day)
			if err != nil {
				return apiutil.Error(c, err)
			}
			week[day] = slots
		}
		return c.JSON(week)
	}
}
