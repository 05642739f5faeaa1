package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class groups students under one teacher at a grade level. Enrollment is the
// student_classes join table with no lifecycle of its own.
type Class struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string    `json:"name" gorm:"not null" validate:"required"`
	GradeLevel string    `json:"grade_level" gorm:"not null" validate:"required"`
	TeacherID  string    `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Teacher   *Teacher    `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Students  []*Student  `json:"students,omitempty" gorm:"many2many:student_classes;"`
	TimeSlots []*TimeSlot `json:"time_slots,omitempty" gorm:"foreignKey:ClassID"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
