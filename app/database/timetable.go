package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateTimeSlot adds a lesson to a class timetable. Class and teacher must
// both exist.
func CreateTimeSlot(db *gorm.DB, slot *models.TimeSlot) error {
	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		return fmt.Errorf("%w: day_of_week must be 0-6", ErrValidation)
	}
	if _, err := GetClassByID(db, slot.ClassID); err != nil {
		return err
	}
	if _, err := GetTeacherByID(db, slot.TeacherID); err != nil {
		return err
	}
	return db.Create(slot).Error
}

// GetTimeSlotsByClass returns a class timetable ordered by day and start.
func GetTimeSlotsByClass(db *gorm.DB, classID string) ([]*models.TimeSlot, error) {
	var slots []*models.TimeSlot
	err := db.Preload("Teacher").Preload("Teacher.User").
		Where("class_id = ?", classID).
		Order("day_of_week, start_time").Find(&slots).Error
	return slots, err
}

// GetTimeSlotsByTeacherAndDay returns a teacher's lessons for one weekday.
func GetTimeSlotsByTeacherAndDay(db *gorm.DB, teacherID string, dayOfWeek int) ([]*models.TimeSlot, error) {
	var slots []*models.TimeSlot
	err := db.Preload("Class").
		Where("teacher_id = ? AND day_of_week = ?", teacherID, dayOfWeek).
		Order("start_time").Find(&slots).Error
	return slots, err
}

// DeleteTimeSlot removes one timetable entry.
func DeleteTimeSlot(db *gorm.DB, slotID string) error {
	res := db.Where("id = ?", slotID).Delete(&models.TimeSlot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetTimeSlotByID returns one timetable entry.
func GetTimeSlotByID(db *gorm.DB, id string) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	err := db.Where("id = ?", id).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
