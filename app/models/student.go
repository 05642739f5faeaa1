package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is a pupil record owned by a parent user. Grades, attendance, fees
// and report cards hang off it and are deleted with it.
type Student struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	FirstName       string    `json:"first_name" gorm:"not null" validate:"required"`
	LastName        string    `json:"last_name" gorm:"not null" validate:"required"`
	DateOfBirth     time.Time `json:"date_of_birth" gorm:"not null;type:date" validate:"required"`
	AdmissionNumber string    `json:"admission_number" gorm:"uniqueIndex;not null" validate:"required"`
	ParentID        string    `json:"parent_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Parent  *User    `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Classes []*Class `json:"classes,omitempty" gorm:"many2many:student_classes;"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// FullName joins the student's first and last name for response shaping.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
