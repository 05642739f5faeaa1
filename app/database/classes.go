package database

import (
	"errors"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateClass inserts a class. The assigned teacher must exist.
func CreateClass(db *gorm.DB, class *models.Class) error {
	if _, err := GetTeacherByID(db, class.TeacherID); err != nil {
		return err
	}
	return db.Create(class).Error
}

// GetClassByID returns a class with its teacher and roster.
func GetClassByID(db *gorm.DB, id string) (*models.Class, error) {
	var class models.Class
	err := db.Preload("Teacher").Preload("Teacher.User").Preload("Students").
		Where("id = ?", id).First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetAllClasses returns classes with their teachers and rosters.
func GetAllClasses(db *gorm.DB, limit, offset int) ([]*models.Class, error) {
	var classes []*models.Class
	err := db.Preload("Teacher").Preload("Teacher.User").Preload("Students").
		Limit(limit).Offset(offset).Find(&classes).Error
	return classes, err
}

// UpdateClass overwrites a class's name, grade level and teacher. The new
// teacher must exist.
func UpdateClass(db *gorm.DB, class *models.Class) error {
	if _, err := GetTeacherByID(db, class.TeacherID); err != nil {
		return err
	}
	res := db.Model(&models.Class{}).Where("id = ?", class.ID).Updates(map[string]interface{}{
		"name":        class.Name,
		"grade_level": class.GradeLevel,
		"teacher_id":  class.TeacherID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClass severs every roster association first, then deletes the class.
func DeleteClass(db *gorm.DB, classID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Class{}).Where("id = ?", classID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Exec("DELETE FROM student_classes WHERE class_id = ?", classID).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", classID).Delete(&models.ClassMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", classID).Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", classID).Delete(&models.Class{}).Error
	})
}

// AddStudentToClass enrolls a student. Enrolling twice fails.
func AddStudentToClass(db *gorm.DB, classID, studentID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetClassByID(tx, classID); err != nil {
			return err
		}
		if _, err := GetStudentByID(tx, studentID); err != nil {
			return err
		}

		var count int64
		if err := tx.Table("student_classes").
			Where("class_id = ? AND student_id = ?", classID, studentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyEnrolled
		}

		return tx.Exec("INSERT INTO student_classes (class_id, student_id) VALUES (?, ?)",
			classID, studentID).Error
	})
}

// RemoveStudentFromClass drops a student from the roster. Removing a student
// who is not enrolled fails.
func RemoveStudentFromClass(db *gorm.DB, classID, studentID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetClassByID(tx, classID); err != nil {
			return err
		}
		if _, err := GetStudentByID(tx, studentID); err != nil {
			return err
		}

		res := tx.Exec("DELETE FROM student_classes WHERE class_id = ? AND student_id = ?",
			classID, studentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotEnrolled
		}
		return nil
	})
}

// GetStudentIDsByClass returns the ids of every student on a class roster.
func GetStudentIDsByClass(db *gorm.DB, classID string) ([]string, error) {
	var ids []string
	err := db.Table("student_classes").
		Where("class_id = ?", classID).
		Pluck("student_id", &ids).Error
	return ids, err
}

// CountClasses returns the total number of classes.
func CountClasses(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Class{}).Count(&count).Error
	return count, err
}
