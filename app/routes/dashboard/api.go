package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/analytics"
	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
)

// GetSummaryAPI returns the landing-page numbers: entity counts, the
// school-wide fee picture, today's attendance and the next few events.
func GetSummaryAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.CountStudents(db)
		if err != nil {
			return apiutil.Error(c, err)
		}
		teachers, err := database.CountTeachers(db)
		if err != nil {
			return apiutil.Error(c, err)
		}
		classes, err := database.CountClasses(db)
		if err != nil {
			return apiutil.Error(c, err)
		}
		parents, err := database.CountUsersByRole(db, models.RoleParent)
		if err != nil {
			return apiutil.Error(c, err)
		}
		materials, err := database.CountMaterials(db)
		if err != nil {
			return apiutil.Error(c, err)
		}

		feeSummary, err := analytics.SummarizeFees(db, analytics.Scope{}, "", "")
		if err != nil {
			return apiutil.Error(c, err)
		}

		today := time.Now()
		attendance, err := analytics.AttendanceRate(db, analytics.Scope{}, &today, &today)
		if err != nil {
			return apiutil.Error(c, err)
		}

		events, err := database.GetUpcomingEvents(db, today, 5)
		if err != nil {
			return apiutil.Error(c, err)
		}

		user := c.Locals("user").(*models.User)
		unread, err := database.CountUnreadMessages(db, user.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}

		return c.JSON(fiber.Map{
			"counts": fiber.Map{
				"students":  students,
				"teachers":  teachers,
				"classes":   classes,
				"parents":   parents,
				"materials": materials,
			},
			"fees":             feeSummary,
			"attendance_today": attendance,
			"upcoming_events":  events,
			"unread_messages":  unread,
		})
	}
}

// GetCalendarDayAPI returns what is happening on one day: events covering it
// and fees falling due.
func GetCalendarDayAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day := time.Now()
		if v := c.Query("date"); v != "" {
			parsed, err := time.Parse("2006-01-02", v)
			if err != nil {
				return apiutil.BadRequest(c, "date must be YYYY-MM-DD")
			}
			day = parsed
		}

		events, err := database.GetEventsOnDay(db, day)
		if err != nil {
			return apiutil.Error(c, err)
		}
		feesDue, err := database.GetPaymentsDue(db, day, day, nil)
		if err != nil {
			return apiutil.Error(c, err)
		}

		return c.JSON(fiber.Map{
			"date":     models.DateOnly(day).Format("2006-01-02"),
			"events":   events,
			"fees_due": feesDue,
		})
	}
}

// GetTrendsAPI serves a metric time series. When demo data is enabled and the
// genuine series is entirely zero, a canned sample is substituted so charts
// on a fresh deployment are not blank.
func GetTrendsAPI(db *gorm.DB, demoData bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metric := c.Query("metric", analytics.MetricAttendance)
		window := c.Query("window", "3m")

		points, err := analytics.Trend(db, metric, window, time.Now())
		if err != nil {
			return apiutil.Error(c, err)
		}

		sampled := false
		if demoData && analytics.AllZero(points) {
			if sample := analytics.SampleTrend(metric); sample != nil {
				points = sample
				sampled = true
			}
		}

		return c.JSON(fiber.Map{
			"metric": metric,
			"window": window,
			"points": points,
			"sample": sampled,
		})
	}
}
