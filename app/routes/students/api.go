package students

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/analytics"
	"school-management-system/app/authz"
	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

// StudentRequest is the create/update payload.
type StudentRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	DateOfBirth     string `json:"date_of_birth" validate:"required"`
	AdmissionNumber string `json:"admission_number" validate:"required"`
	ParentID        string `json:"parent_id" validate:"required,uuid"`
}

// ListStudentsAPI returns students the caller may see: staff get everyone,
// parents only their own children.
func ListStudentsAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)

		if user.Role == models.RoleParent {
			students, err := database.GetStudentsByParent(db, user.ID)
			if err != nil {
				return apiutil.Error(c, err)
			}
			return c.JSON(students)
		}

		limit := c.QueryInt("limit", 100)
		offset := c.QueryInt("offset", 0)
		students, err := database.GetAllStudents(db, limit, offset)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(students)
	}
}

func CreateStudentAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StudentRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return apiutil.BadRequest(c, "date_of_birth must be YYYY-MM-DD")
		}

		student := &models.Student{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			DateOfBirth:     dob,
			AdmissionNumber: req.AdmissionNumber,
			ParentID:        req.ParentID,
		}
		if err := database.CreateStudent(db, student); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(student)
	}
}

func GetStudentAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := apiutil.RequireStudentAccess(c, db, c.Params("id"), authz.ActionRead)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(student)
	}
}

func UpdateStudentAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StudentRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return apiutil.BadRequest(c, "date_of_birth must be YYYY-MM-DD")
		}

		student := &models.Student{
			ID:              c.Params("id"),
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			DateOfBirth:     dob,
			AdmissionNumber: req.AdmissionNumber,
		}
		if err := database.UpdateStudent(db, student); err != nil {
			return apiutil.Error(c, err)
		}
		updated, err := database.GetStudentByID(db, student.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteStudentAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteStudent(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Student deleted"})
	}
}

func GetStudentGradesAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := apiutil.RequireStudentAccess(c, db, c.Params("id"), authz.ActionRead)
		if err != nil {
			return apiutil.Error(c, err)
		}
		grades, err := database.GetGradesByStudent(db, student.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(grades)
	}
}

func GetStudentAttendanceAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := apiutil.RequireStudentAccess(c, db, c.Params("id"), authz.ActionRead)
		if err != nil {
			return apiutil.Error(c, err)
		}
		records, err := database.GetAttendanceByStudent(db, student.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(records)
	}
}

func GetStudentFeesAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := apiutil.RequireStudentAccess(c, db, c.Params("id"), authz.ActionRead)
		if err != nil {
			return apiutil.Error(c, err)
		}
		fees, err := database.GetFeesByStudent(db, student.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fees)
	}
}

func GetStudentPerformanceAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := apiutil.RequireStudentAccess(c, db, c.Params("id"), authz.ActionRead)
		if err != nil {
			return apiutil.Error(c, err)
		}
		perf, err := analytics.PerformanceForStudent(db, student.ID, c.Query("term"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(perf)
	}
}
