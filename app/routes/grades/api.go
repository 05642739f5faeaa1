package grades

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/analytics"
	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

// RecordGradeAPI appends a score for a student. The letter grade is derived
// from the score on the server; one sent by the client is ignored.
func RecordGradeAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type GradeRequest struct {
			StudentID    string  `json:"student_id" validate:"required,uuid"`
			Subject      string  `json:"subject" validate:"required"`
			Score        float64 `json:"score" validate:"gte=0,lte=100"`
			Term         string  `json:"term" validate:"required"`
			DateRecorded string  `json:"date_recorded"`
		}

		var req GradeRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		recorded := time.Now()
		if req.DateRecorded != "" {
			day, err := time.Parse("2006-01-02", req.DateRecorded)
			if err != nil {
				return apiutil.BadRequest(c, "date_recorded must be YYYY-MM-DD")
			}
			recorded = day
		}

		grade := &models.Grade{
			StudentID:    req.StudentID,
			Subject:      req.Subject,
			Score:        req.Score,
			Term:         req.Term,
			DateRecorded: recorded,
		}
		if err := database.CreateGrade(db, grade); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(grade)
	}
}

func GetGradeDistributionAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := analytics.Scope{
			StudentID: c.Query("student_id"),
			ClassID:   c.Query("class_id"),
		}
		distribution, err := analytics.GradeDistribution(db, scope, c.Query("term"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(distribution)
	}
}

func GetSubjectPerformanceAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := analytics.Scope{
			StudentID: c.Query("student_id"),
			ClassID:   c.Query("class_id"),
		}
		performance, err := analytics.SubjectPerformance(db, scope, c.Query("term"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(performance)
	}
}
