package analytics

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
)

// Trend metrics.
const (
	MetricAttendance = "attendance"
	MetricGrades     = "grades"
	MetricFees       = "fees"
)

// TrendPoint is one bucket of a time series. Label is "2026-W09" for weekly
// buckets and "2026-03" for monthly ones.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ParseWindow maps a window preset to its start, counting back from now.
// Supported presets are 3m, 6m and 1y.
func ParseWindow(window string, now time.Time) (time.Time, error) {
	switch window {
	case "3m":
		return now.AddDate(0, -3, 0), nil
	case "6m":
		return now.AddDate(0, -6, 0), nil
	case "1y":
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown window %q", database.ErrValidation, window)
	}
}

// Trend builds a time series for one metric over a window ending now. Buckets
// are fixed calendar units (ISO weeks for attendance, months for grades and
// fees), returned oldest first, with zero-valued points for empty buckets.
func Trend(db *gorm.DB, metric, window string, now time.Time) ([]TrendPoint, error) {
	from, err := ParseWindow(window, now)
	if err != nil {
		return nil, err
	}
	switch metric {
	case MetricAttendance:
		return attendanceTrend(db, from, now)
	case MetricGrades:
		return gradesTrend(db, from, now)
	case MetricFees:
		return feesTrend(db, from, now)
	default:
		return nil, fmt.Errorf("%w: unknown metric %q", database.ErrValidation, metric)
	}
}

func isoWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// mondayOf truncates to the Monday of t's ISO week.
func mondayOf(t time.Time) time.Time {
	t = models.DateOnly(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// attendanceTrend is the weekly attendance rate: present over marked per ISO
// week, 0 for weeks with no records.
func attendanceTrend(db *gorm.DB, from, to time.Time) ([]TrendPoint, error) {
	var records []*models.Attendance
	err := db.Where("date >= ? AND date <= ?", models.DateOnly(from), models.DateOnly(to)).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	type tally struct {
		present int
		marked  int
	}
	buckets := make(map[string]*tally)
	for _, record := range records {
		label := isoWeekLabel(record.Date)
		t, ok := buckets[label]
		if !ok {
			t = &tally{}
			buckets[label] = t
		}
		t.marked++
		if record.Status == models.Present {
			t.present++
		}
	}

	var points []TrendPoint
	for week := mondayOf(from); !week.After(to); week = week.AddDate(0, 0, 7) {
		label := isoWeekLabel(week)
		point := TrendPoint{Label: label}
		if t, ok := buckets[label]; ok && t.marked > 0 {
			point.Value = float64(t.present) / float64(t.marked) * 100
		}
		points = append(points, point)
	}
	return points, nil
}

func monthLabel(t time.Time) string {
	return t.Format("2006-01")
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// gradesTrend is the mean score of grades recorded in each month.
func gradesTrend(db *gorm.DB, from, to time.Time) ([]TrendPoint, error) {
	var grades []*models.Grade
	err := db.Where("date_recorded >= ? AND date_recorded <= ?",
		models.DateOnly(from), models.DateOnly(to)).Find(&grades).Error
	if err != nil {
		return nil, err
	}

	type tally struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*tally)
	for _, grade := range grades {
		label := monthLabel(grade.DateRecorded)
		t, ok := buckets[label]
		if !ok {
			t = &tally{}
			buckets[label] = t
		}
		t.sum += grade.Score
		t.count++
	}

	var points []TrendPoint
	for month := firstOfMonth(from); !month.After(to); month = month.AddDate(0, 1, 0) {
		label := monthLabel(month)
		point := TrendPoint{Label: label}
		if t, ok := buckets[label]; ok && t.count > 0 {
			point.Value = t.sum / float64(t.count)
		}
		points = append(points, point)
	}
	return points, nil
}

// feesTrend sums collected payments per month. Payments carry no timestamp of
// their own, so a fee's paid total is attributed to its due-date month.
func feesTrend(db *gorm.DB, from, to time.Time) ([]TrendPoint, error) {
	var fees []*models.Fee
	err := db.Where("due_date >= ? AND due_date <= ?",
		models.DateOnly(from), models.DateOnly(to)).Find(&fees).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]float64)
	for _, fee := range fees {
		buckets[monthLabel(fee.DueDate)] += fee.Paid
	}

	var points []TrendPoint
	for month := firstOfMonth(from); !month.After(to); month = month.AddDate(0, 1, 0) {
		label := monthLabel(month)
		points = append(points, TrendPoint{Label: label, Value: buckets[label]})
	}
	return points, nil
}
