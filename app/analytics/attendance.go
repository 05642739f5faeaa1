package analytics

import (
	"time"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// AttendanceStats is the per-status breakdown for a scope and date range.
// Total is the number of marked records, or the enrolled count when nothing
// was marked; Rate is present over marked, as a percentage.
type AttendanceStats struct {
	Present int64   `json:"present"`
	Absent  int64   `json:"absent"`
	Late    int64   `json:"late"`
	Excused int64   `json:"excused"`
	Total   int64   `json:"total"`
	Rate    float64 `json:"rate"`
}

// AttendanceRate computes the attendance breakdown for a scope between two
// dates inclusive (nil means unbounded). Records with an unknown status count
// toward the marked total but land in no bucket. With zero marked records the
// rate is 0 and the total falls back to the enrolled count; there is never a
// division error.
func AttendanceRate(db *gorm.DB, scope Scope, from, to *time.Time) (*AttendanceStats, error) {
	query := db.Model(&models.Attendance{})

	ids, restrict, err := scope.studentIDs(db)
	if err != nil {
		return nil, err
	}
	if restrict {
		query = query.Where("student_id IN ?", ids)
	}
	if from != nil {
		query = query.Where("date >= ?", models.DateOnly(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", models.DateOnly(*to))
	}

	var totalMarked int64
	if err := query.Session(&gorm.Session{}).Count(&totalMarked).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := query.Session(&gorm.Session{}).
		Select("status, COUNT(*) as count").
		Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &AttendanceStats{}
	for _, row := range rows {
		switch models.AttendanceStatus(row.Status) {
		case models.Present:
			stats.Present = row.Count
		case models.Absent:
			stats.Absent = row.Count
		case models.Late:
			stats.Late = row.Count
		case models.Excused:
			stats.Excused = row.Count
		}
	}

	enrolled, err := scope.enrolledCount(db)
	if err != nil {
		return nil, err
	}

	stats.Total = totalMarked
	if enrolled > stats.Total {
		stats.Total = enrolled
	}
	if totalMarked > 0 {
		stats.Rate = float64(stats.Present) / float64(totalMarked) * 100
	}
	return stats, nil
}
