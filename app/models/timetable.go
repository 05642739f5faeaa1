package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeSlot is one recurring lesson in a class timetable. DayOfWeek runs 0-6
// with 0 meaning Monday.
type TimeSlot struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	DayOfWeek int       `json:"day_of_week" gorm:"not null" validate:"gte=0,lte=6"`
	StartTime string    `json:"start_time" gorm:"not null" validate:"required"`
	EndTime   string    `json:"end_time" gorm:"not null" validate:"required"`
	ClassID   string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Subject   string    `json:"subject" gorm:"not null" validate:"required"`
	TeacherID string    `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}

func (t *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
