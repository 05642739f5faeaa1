package financial

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/analytics"
	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
)

func GetFeeSummaryAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := analytics.Scope{
			StudentID: c.Query("student_id"),
			ClassID:   c.Query("class_id"),
		}
		summary, err := analytics.SummarizeFees(db, scope, c.Query("term"), c.Query("academic_year"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(summary)
	}
}

func GetStatusDistributionAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		distribution, err := analytics.FeeStatusDistribution(db, c.Query("academic_year"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(distribution)
	}
}

// GetPaymentsDueAPI lists fees with an outstanding balance falling due in the
// window, defaulting to the next 30 days. Parents see only their own
// children's fees.
func GetPaymentsDueAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := time.Now()
		to := from.AddDate(0, 0, 30)
		if v := c.Query("from"); v != "" {
			day, err := time.Parse("2006-01-02", v)
			if err != nil {
				return apiutil.BadRequest(c, "from must be YYYY-MM-DD")
			}
			from = day
		}
		if v := c.Query("to"); v != "" {
			day, err := time.Parse("2006-01-02", v)
			if err != nil {
				return apiutil.BadRequest(c, "to must be YYYY-MM-DD")
			}
			to = day
		}

		user := c.Locals("user").(*models.User)
		var studentIDs []string
		if user.Role == models.RoleParent {
			students, err := database.GetStudentsByParent(db, user.ID)
			if err != nil {
				return apiutil.Error(c, err)
			}
			studentIDs = make([]string, 0, len(students))
			for _, student := range students {
				studentIDs = append(studentIDs, student.ID)
			}
		}

		fees, err := database.GetPaymentsDue(db, from, to, studentIDs)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fees)
	}
}
