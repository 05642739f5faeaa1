package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateTeacher creates a staff profile for an existing teacher-role user.
// One profile per user.
func CreateTeacher(db *gorm.DB, teacher *models.Teacher) error {
	user, err := GetUserByID(db, teacher.UserID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleTeacher {
		return fmt.Errorf("%w: user is not a teacher", ErrValidation)
	}

	var count int64
	if err := db.Model(&models.Teacher{}).
		Where("user_id = ?", teacher.UserID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: teacher profile already exists for this user", ErrDuplicate)
	}

	return db.Create(teacher).Error
}

// GetTeacherByID returns a teacher profile with its user and classes.
func GetTeacherByID(db *gorm.DB, id string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := db.Preload("User").Preload("Classes").Where("id = ?", id).First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetTeacherByUserID returns the profile linked to a user account.
func GetTeacherByUserID(db *gorm.DB, userID string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := db.Where("user_id = ?", userID).First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetAllTeachers returns teacher profiles with users and classes.
func GetAllTeachers(db *gorm.DB, limit, offset int) ([]*models.Teacher, error) {
	var teachers []*models.Teacher
	err := db.Preload("User").Preload("Classes").Limit(limit).Offset(offset).Find(&teachers).Error
	return teachers, err
}

// UpdateTeacher overwrites a teacher's specialization.
func UpdateTeacher(db *gorm.DB, teacherID, specialization string) error {
	res := db.Model(&models.Teacher{}).Where("id = ?", teacherID).Update("specialization", specialization)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTeacher removes the staff profile but leaves the user account intact.
// Classes still assigned to the teacher block deletion.
func DeleteTeacher(db *gorm.DB, teacherID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetTeacherByID(tx, teacherID); err != nil {
			return err
		}
		var classCount int64
		if err := tx.Model(&models.Class{}).Where("teacher_id = ?", teacherID).Count(&classCount).Error; err != nil {
			return err
		}
		if classCount > 0 {
			return fmt.Errorf("%w: teacher still owns %d classes", ErrValidation, classCount)
		}
		return tx.Where("id = ?", teacherID).Delete(&models.Teacher{}).Error
	})
}

// CountTeachers returns the total number of teacher profiles.
func CountTeachers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Teacher{}).Count(&count).Error
	return count, err
}
