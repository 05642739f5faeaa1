package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is one student's status for one calendar day. At most one record
// exists per (student, date); a second submission overwrites the status.
type Attendance struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid"`
	StudentID string           `json:"student_id" gorm:"not null;index:idx_attendance_student_date,unique;type:uuid" validate:"required,uuid"`
	Date      time.Time        `json:"date" gorm:"not null;index:idx_attendance_student_date,unique;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent late excused"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// DateOnly truncates t to midnight UTC so attendance dates compare equal
// regardless of the time-of-day or zone they arrived with.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
