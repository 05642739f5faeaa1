package timetable

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

func GetTimeSlotAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slot, err := database.GetTimeSlotByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(slot)
	}
}

func CreateTimeSlotAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type TimeSlotRequest struct {
			DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
			StartTime string `json:"start_time" validate:"required"`
			EndTime   string `json:"end_time" validate:"required"`
			ClassID   string `json:"class_id" validate:"required,uuid"`
			Subject   string `json:"subject" validate:"required"`
			TeacherID string `json:"teacher_id" validate:"required,uuid"`
		}

		var req TimeSlotRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		slot := &models.TimeSlot{
			DayOfWeek: req.DayOfWeek,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			ClassID:   req.ClassID,
			Subject:   req.Subject,
			TeacherID: req.TeacherID,
		}
		if err := database.CreateTimeSlot(db, slot); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(slot)
	}
}

func DeleteTimeSlotAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteTimeSlot(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Time slot deleted"})
	}
}
