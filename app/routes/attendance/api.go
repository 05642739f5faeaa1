package attendance

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

// AttendanceRequest is one day's status for one student.
type AttendanceRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

func parseDay(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// RecordAttendanceAPI upserts one attendance record: marking the same student
// and day twice overwrites the status instead of duplicating the row.
func RecordAttendanceAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AttendanceRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}
		day, err := parseDay(req.Date)
		if err != nil {
			return apiutil.BadRequest(c, "date must be YYYY-MM-DD")
		}

		record, err := database.UpsertAttendance(db, req.StudentID, day, models.AttendanceStatus(req.Status))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(record)
	}
}

// BatchRecordAttendanceAPI records a whole register in one call. Entries for
// unknown students are skipped; the response reports what was written.
func BatchRecordAttendanceAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type BatchRequest struct {
			Records []AttendanceRequest `json:"records" validate:"required,min=1"`
		}

		var req BatchRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		entries := make([]database.AttendanceEntry, 0, len(req.Records))
		for _, item := range req.Records {
			day, err := parseDay(item.Date)
			if err != nil {
				continue
			}
			entries = append(entries, database.AttendanceEntry{
				StudentID: item.StudentID,
				Date:      day,
				Status:    models.AttendanceStatus(item.Status),
			})
		}

		written, err := database.BatchUpsertAttendance(db, entries)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{
			"recorded": len(written),
			"skipped":  len(req.Records) - len(written),
			"records":  written,
		})
	}
}

func GetAttendanceByDateAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, err := parseDay(c.Params("date"))
		if err != nil {
			return apiutil.BadRequest(c, "date must be YYYY-MM-DD")
		}
		records, err := database.GetAttendanceByDate(db, day, c.Query("class_id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(records)
	}
}

func GetAttendanceHistoryAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var from, to *time.Time
		if v := c.Query("from"); v != "" {
			day, err := parseDay(v)
			if err != nil {
				return apiutil.BadRequest(c, "from must be YYYY-MM-DD")
			}
			from = &day
		}
		if v := c.Query("to"); v != "" {
			day, err := parseDay(v)
			if err != nil {
				return apiutil.BadRequest(c, "to must be YYYY-MM-DD")
			}
			to = &day
		}

		records, err := database.GetAttendanceHistory(db, c.Query("class_id"), from, to)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(records)
	}
}

func GetAttendanceStatsAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := analytics.Scope{
			StudentID: c.Query("student_id"),
			ClassID:   c.Query("class_id"),
		}
		var from, to *time.Time
		if v := c.Query("from"); v != "" {
			day, err := parseDay(v)
			if err != nil {
				return apiutil.BadRequest(c, "from must be YYYY-MM-DD")
			}
			from = &day
		}
		if v := c.Query("to"); v != "" {
			day, err := parseDay(v)
			if err != nil {
				return apiutil.BadRequest(c, "to must be YYYY-MM-DD")
			}
			to = &day
		}

		stats, err := analytics.AttendanceRate(db, scope, from, to)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(stats)
	}
}
