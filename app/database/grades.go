package database

import (
	"school-management-system/app/models"

	"gorm.io/gorm"
)

// CreateGrade appends a recorded score for a student. The letter is derived
// from the score here; whatever the caller sent is ignored.
func CreateGrade(db *gorm.DB, grade *models.Grade) error {
	if _, err := GetStudentByID(db, grade.StudentID); err != nil {
		return err
	}
	grade.GradeLetter = models.LetterForScore(grade.Score)
	grade.DateRecorded = models.DateOnly(grade.DateRecorded)
	return db.Create(grade).Error
}

// GetGradesByStudent returns every grade recorded for one student.
func GetGradesByStudent(db *gorm.DB, studentID string) ([]*models.Grade, error) {
	var grades []*models.Grade
	err := db.Where("student_id = ?", studentID).Order("date_recorded DESC").Find(&grades).Error
	return grades, err
}
