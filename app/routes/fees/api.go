package fees

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

// FeeRequest is the create/update payload.
type FeeRequest struct {
	StudentID    string  `json:"student_id" validate:"required,uuid"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Description  string  `json:"description" validate:"required"`
	DueDate      string  `json:"due_date" validate:"required"`
	Term         string  `json:"term" validate:"required"`
	AcademicYear string  `json:"academic_year" validate:"required"`
}

func ListFeesAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fees, err := database.GetAllFees(db, c.Query("term"), c.Query("academic_year"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fees)
	}
}

// GetFeeAPI returns one fee. Parents may only see fees charged to their own
// children.
func GetFeeAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fee, err := database.GetFeeByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		if _, err := apiutil.RequireStudentAccess(c, db, fee.StudentID, authz.ActionRead); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fee)
	}
}

func CreateFeeAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FeeRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return apiutil.BadRequest(c, "due_date must be YYYY-MM-DD")
		}

		fee := &models.Fee{
			StudentID:    req.StudentID,
			Amount:       req.Amount,
			Description:  req.Description,
			DueDate:      due,
			Term:         req.Term,
			AcademicYear: req.AcademicYear,
		}
		if err := database.CreateFee(db, fee); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(fee)
	}
}

func UpdateFeeAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FeeRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return apiutil.BadRequest(c, "due_date must be YYYY-MM-DD")
		}

		fee := &models.Fee{
			ID:           c.Params("id"),
			Amount:       req.Amount,
			Description:  req.Description,
			DueDate:      due,
			Term:         req.Term,
			AcademicYear: req.AcademicYear,
		}
		if err := database.UpdateFee(db, fee); err != nil {
			return apiutil.Error(c, err)
		}
		updated, err := database.GetFeeByID(db, fee.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteFeeAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteFee(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Fee deleted"})
	}
}

// RecordPaymentAPI applies a payment to a fee. Overpaying the outstanding
// balance is rejected outright, not clamped.
func RecordPaymentAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type PaymentRequest struct {
			Amount float64 `json:"amount" validate:"required"`
		}

		var req PaymentRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		fee, err := database.RecordFeePayment(db, c.Params("id"), req.Amount)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fee)
	}
}
