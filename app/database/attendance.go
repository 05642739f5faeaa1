package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// UpsertAttendance records a student's status for a day. If a record already
// exists for that (student, date) pair its status is overwritten in place;
// otherwise a new record is inserted. The read-check-write runs in one
// transaction.
func UpsertAttendance(db *gorm.DB, studentID string, date time.Time, status models.AttendanceStatus) (*models.Attendance, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown attendance status %q", ErrValidation, status)
	}
	day := models.DateOnly(date)

	var record *models.Attendance
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetStudentByID(tx, studentID); err != nil {
			return err
		}

		var existing models.Attendance
		err := tx.Where("student_id = ? AND date = ?", studentID, day).First(&existing).Error
		switch {
		case err == nil:
			existing.Status = status
			if err := tx.Model(&existing).Update("status", status).Error; err != nil {
				return err
			}
			record = &existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.Attendance{StudentID: studentID, Date: day, Status: status}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			record = &created
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// AttendanceEntry is one item of a batch submission.
type AttendanceEntry struct {
	StudentID string
	Date      time.Time
	Status    models.AttendanceStatus
}

// BatchUpsertAttendance applies the upsert rule to each entry independently.
// Entries referencing unknown students are skipped, not errors; the returned
// slice holds only the records actually written.
func BatchUpsertAttendance(db *gorm.DB, entries []AttendanceEntry) ([]*models.Attendance, error) {
	written := make([]*models.Attendance, 0, len(entries))
	for _, entry := range entries {
		record, err := UpsertAttendance(db, entry.StudentID, entry.Date, entry.Status)
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
				continue
			}
			return written, err
		}
		written = append(written, record)
	}
	return written, nil
}

// GetAttendanceByDate returns every record for one day, optionally narrowed
// to a class roster, with students preloaded for response shaping.
func GetAttendanceByDate(db *gorm.DB, date time.Time, classID string) ([]*models.Attendance, error) {
	day := models.DateOnly(date)
	query := db.Preload("Student").Where("date = ?", day)

	if classID != "" {
		if _, err := GetClassByID(db, classID); err != nil {
			return nil, err
		}
		studentIDs, err := GetStudentIDsByClass(db, classID)
		if err != nil {
			return nil, err
		}
		query = query.Where("student_id IN ?", studentIDs)
	}

	var records []*models.Attendance
	err := query.Find(&records).Error
	return records, err
}

// GetAttendanceHistory returns records in a date range, newest first,
// optionally narrowed to a class roster.
func GetAttendanceHistory(db *gorm.DB, classID string, from, to *time.Time) ([]*models.Attendance, error) {
	query := db.Preload("Student").Order("date DESC")

	if from != nil {
		query = query.Where("date >= ?", models.DateOnly(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", models.DateOnly(*to))
	}
	if classID != "" {
		if _, err := GetClassByID(db, classID); err != nil {
			return nil, err
		}
		studentIDs, err := GetStudentIDsByClass(db, classID)
		if err != nil {
			return nil, err
		}
		query = query.Where("student_id IN ?", studentIDs)
	}

	var records []*models.Attendance
	err := query.Find(&records).Error
	return records, err
}

// GetAttendanceByStudent returns every record for one student.
func GetAttendanceByStudent(db *gorm.DB, studentID string) ([]*models.Attendance, error) {
	var records []*models.Attendance
	err := db.Where("student_id = ?", studentID).Order("date DESC").Find(&records).Error
	return records, err
}
