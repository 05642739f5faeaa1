package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportCard is a term report for one student. It owns its grade summaries;
// deleting the card deletes them with it.
type ReportCard struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid"`
	StudentID         string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Term              string    `json:"term" gorm:"not null" validate:"required"`
	AcademicYear      string    `json:"academic_year" gorm:"not null;index" validate:"required"`
	IssueDate         time.Time `json:"issue_date" gorm:"not null;type:date" validate:"required"`
	TeacherComments   string    `json:"teacher_comments" gorm:"type:text"`
	PrincipalComments *string   `json:"principal_comments,omitempty" gorm:"type:text"`
	AttendanceSummary string    `json:"attendance_summary"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`

	Student        *Student        `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	GradeSummaries []*GradeSummary `json:"grade_summaries,omitempty" gorm:"foreignKey:ReportCardID"`
}

func (r *ReportCard) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// GradeSummary is one averaged subject line on a report card.
type GradeSummary struct {
	ID           string  `json:"id" gorm:"primaryKey;type:uuid"`
	ReportCardID string  `json:"report_card_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Subject      string  `json:"subject" gorm:"not null" validate:"required"`
	Score        float64 `json:"score" gorm:"not null" validate:"gte=0,lte=100"`
	GradeLetter  string  `json:"grade_letter" gorm:"not null;type:varchar(2)"`
	TeacherID    *string `json:"teacher_id,omitempty" gorm:"type:uuid"`
	Comments     *string `json:"comments,omitempty" gorm:"type:text"`

	ReportCard *ReportCard `json:"-" gorm:"foreignKey:ReportCardID;references:ID"`
	Teacher    *Teacher    `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}

func (g *GradeSummary) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
