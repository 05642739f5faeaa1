package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fee is a charge against a student. Paid accumulates through recorded
// payments and never exceeds Amount; Status is recomputed on every change to
// Paid, never stored stale.
type Fee struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	StudentID    string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount       float64   `json:"amount" gorm:"not null" validate:"required,gt=0"`
	Description  string    `json:"description" gorm:"not null" validate:"required"`
	DueDate      time.Time `json:"due_date" gorm:"not null;index;type:date" validate:"required"`
	Paid         float64   `json:"paid" gorm:"not null;default:0"`
	Status       FeeStatus `json:"status" gorm:"not null;type:varchar(10)"`
	Term         string    `json:"term" gorm:"not null" validate:"required"`
	AcademicYear string    `json:"academic_year" gorm:"not null;index" validate:"required"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

func (f *Fee) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Balance is the outstanding amount on the fee.
func (f *Fee) Balance() float64 {
	return f.Amount - f.Paid
}
