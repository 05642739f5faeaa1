package reportcards

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/authz"
	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

func GetStudentReportCardsAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := apiutil.RequireStudentAccess(c, db, c.Params("studentId"), authz.ActionRead)
		if err != nil {
			return apiutil.Error(c, err)
		}
		cards, err := database.GetReportCardsByStudent(db, student.ID, c.Query("term"), c.Query("academic_year"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(cards)
	}
}

func GetReportCardAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		card, err := database.GetReportCardByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		if _, err := apiutil.RequireStudentAccess(c, db, card.StudentID, authz.ActionRead); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(card)
	}
}

func CreateReportCardAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type ReportCardRequest struct {
			StudentID         string  `json:"student_id" validate:"required,uuid"`
			Term              string  `json:"term" validate:"required"`
			AcademicYear      string  `json:"academic_year" validate:"required"`
			IssueDate         string  `json:"issue_date" validate:"required"`
			TeacherComments   string  `json:"teacher_comments"`
			PrincipalComments *string `json:"principal_comments"`
			AttendanceSummary string  `json:"attendance_summary"`
		}

		var req ReportCardRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}
		issued, err := time.Parse("2006-01-02", req.IssueDate)
		if err != nil {
			return apiutil.BadRequest(c, "issue_date must be YYYY-MM-DD")
		}

		card := &models.ReportCard{
			StudentID:         req.StudentID,
			Term:              req.Term,
			AcademicYear:      req.AcademicYear,
			IssueDate:         issued,
			TeacherComments:   req.TeacherComments,
			PrincipalComments: req.PrincipalComments,
			AttendanceSummary: req.AttendanceSummary,
		}
		if err := database.CreateReportCard(db, card); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(card)
	}
}

func AddGradeSummaryAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type SummaryRequest struct {
			Subject   string  `json:"subject" validate:"required"`
			Score     float64 `json:"score" validate:"gte=0,lte=100"`
			TeacherID *string `json:"teacher_id"`
			Comments  *string `json:"comments"`
		}

		var req SummaryRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		summary := &models.GradeSummary{
			ReportCardID: c.Params("id"),
			Subject:      req.Subject,
			Score:        req.Score,
			TeacherID:    req.TeacherID,
			Comments:     req.Comments,
		}
		if err := database.AddGradeSummary(db, summary); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(summary)
	}
}

func UpdateGradeSummaryAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type UpdateRequest struct {
			Score    float64 `json:"score" validate:"gte=0,lte=100"`
			Comments *string `json:"comments"`
		}

		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		if err := database.UpdateGradeSummary(db, c.Params("summaryId"), req.Score, req.Comments); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Summary updated"})
	}
}

func DeleteReportCardAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteReportCard(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Report card deleted"})
	}
}
