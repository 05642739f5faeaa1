package analytics

import (
	"gorm.io/gorm"

	"school-management-system/app/models"
)

// LetterCount is one bucket of the letter-grade distribution.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int64  `json:"count"`
}

// GradeDistribution counts grades in scope by letter, optionally narrowed to
// one term. Letters with no grades are omitted.
func GradeDistribution(db *gorm.DB, scope Scope, term string) ([]LetterCount, error) {
	query := db.Model(&models.Grade{})

	ids, restrict, err := scope.studentIDs(db)
	if err != nil {
		return nil, err
	}
	if restrict {
		query = query.Where("student_id IN ?", ids)
	}
	if term != "" {
		query = query.Where("term = ?", term)
	}

	var rows []LetterCount
	err = query.Select("grade_letter as letter, COUNT(*) as count").
		Group("grade_letter").Order("grade_letter").Scan(&rows).Error
	return rows, err
}

// SubjectAverage is the mean score in one subject.
type SubjectAverage struct {
	Subject string  `json:"subject"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// SubjectPerformance averages scores per subject for the scope. Subjects with
// no recorded grades simply do not appear.
func SubjectPerformance(db *gorm.DB, scope Scope, term string) ([]SubjectAverage, error) {
	query := db.Model(&models.Grade{})

	ids, restrict, err := scope.studentIDs(db)
	if err != nil {
		return nil, err
	}
	if restrict {
		query = query.Where("student_id IN ?", ids)
	}
	if term != "" {
		query = query.Where("term = ?", term)
	}

	var rows []SubjectAverage
	err = query.Select("subject, AVG(score) as average, COUNT(*) as count").
		Group("subject").Order("subject").Scan(&rows).Error
	return rows, err
}

// StudentPerformance is one student's academic picture: per-subject means,
// their overall average, and the attendance rate over the same period.
type StudentPerformance struct {
	StudentID      string           `json:"student_id"`
	Subjects       []SubjectAverage `json:"subjects"`
	OverallAverage float64          `json:"overall_average"`
	AttendanceRate float64          `json:"attendance_rate"`
}

// PerformanceForStudent reports a single student's per-subject averages, the
// overall average across subjects (mean of the subject means, so a subject
// with many grades does not dominate), and their attendance rate. A student
// with no grades gets an overall average of 0.
func PerformanceForStudent(db *gorm.DB, studentID, term string) (*StudentPerformance, error) {
	scope := Scope{StudentID: studentID}

	subjects, err := SubjectPerformance(db, scope, term)
	if err != nil {
		return nil, err
	}

	perf := &StudentPerformance{StudentID: studentID, Subjects: subjects}
	if len(subjects) > 0 {
		var sum float64
		for _, subject := range subjects {
			sum += subject.Average
		}
		perf.OverallAverage = sum / float64(len(subjects))
	}

	stats, err := AttendanceRate(db, scope, nil, nil)
	if err != nil {
		return nil, err
	}
	perf.AttendanceRate = stats.Rate
	return perf, nil
}
