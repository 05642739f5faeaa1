package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Grade is a single recorded score for a student in a subject. Raw grades are
// append-only; only report-card summaries are ever edited.
type Grade struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	StudentID    string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Subject      string    `json:"subject" gorm:"not null" validate:"required"`
	Score        float64   `json:"score" gorm:"not null" validate:"gte=0,lte=100"`
	GradeLetter  string    `json:"grade_letter" gorm:"not null;type:varchar(2)"`
	Term         string    `json:"term" gorm:"not null" validate:"required"`
	DateRecorded time.Time `json:"date_recorded" gorm:"not null;index;type:date" validate:"required"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

func (g *Grade) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// LetterForScore derives the letter grade for a numeric score. The letter is
// always computed here, never taken from the caller.
func LetterForScore(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
