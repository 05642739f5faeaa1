package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateStudent inserts a student record. The owning parent must exist and
// hold the parent role.
func CreateStudent(db *gorm.DB, student *models.Student) error {
	parent, err := GetUserByID(db, student.ParentID)
	if err != nil {
		return err
	}
	if parent.Role != models.RoleParent {
		return fmt.Errorf("%w: parent_id must reference a parent user", ErrValidation)
	}

	var count int64
	if err := db.Model(&models.Student{}).
		Where("admission_number = ?", student.AdmissionNumber).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: admission number already taken", ErrDuplicate)
	}

	return db.Create(student).Error
}

// GetStudentByID returns a student by id.
func GetStudentByID(db *gorm.DB, id string) (*models.Student, error) {
	var student models.Student
	err := db.Where("id = ?", id).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetAllStudents returns students with simple pagination.
func GetAllStudents(db *gorm.DB, limit, offset int) ([]*models.Student, error) {
	var students []*models.Student
	err := db.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&students).Error
	return students, err
}

// GetStudentsByParent returns every student owned by one parent.
func GetStudentsByParent(db *gorm.DB, parentID string) ([]*models.Student, error) {
	var students []*models.Student
	err := db.Where("parent_id = ?", parentID).Order("last_name, first_name").Find(&students).Error
	return students, err
}

// UpdateStudent overwrites a student's mutable fields.
func UpdateStudent(db *gorm.DB, student *models.Student) error {
	res := db.Model(&models.Student{}).Where("id = ?", student.ID).Updates(map[string]interface{}{
		"first_name":       student.FirstName,
		"last_name":        student.LastName,
		"date_of_birth":    student.DateOfBirth,
		"admission_number": student.AdmissionNumber,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStudent removes a student and every record it owns: grades,
// attendance, fees, report cards with their summaries, and roster rows.
func DeleteStudent(db *gorm.DB, studentID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetStudentByID(tx, studentID); err != nil {
			return err
		}

		var cardIDs []string
		if err := tx.Model(&models.ReportCard{}).
			Where("student_id = ?", studentID).
			Pluck("id", &cardIDs).Error; err != nil {
			return err
		}
		if len(cardIDs) > 0 {
			if err := tx.Where("report_card_id IN ?", cardIDs).Delete(&models.GradeSummary{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", cardIDs).Delete(&models.ReportCard{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("student_id = ?", studentID).Delete(&models.Grade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", studentID).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", studentID).Delete(&models.Fee{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM student_classes WHERE student_id = ?", studentID).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", studentID).Delete(&models.Student{}).Error
	})
}

// CountStudents returns the total number of students.
func CountStudents(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Student{}).Count(&count).Error
	return count, err
}
