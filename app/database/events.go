package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"school-management-system/app/models"
)

// CreateEvent inserts a calendar event.
func CreateEvent(db *gorm.DB, event *models.Event) error {
	event.StartDate = models.DateOnly(event.StartDate)
	event.EndDate = models.DateOnly(event.EndDate)
	return db.Create(event).Error
}

// GetEventByID returns one event with its creator.
func GetEventByID(db *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	err := db.Preload("Creator").Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetEvents returns events ordered by start date, optionally filtered by
// date range and type.
func GetEvents(db *gorm.DB, from, to *time.Time, eventType string) ([]*models.Event, error) {
	query := db.Preload("Creator").Order("start_date")
	if from != nil {
		query = query.Where("start_date >= ?", models.DateOnly(*from))
	}
	if to != nil {
		query = query.Where("end_date <= ?", models.DateOnly(*to))
	}
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	var events []*models.Event
	err := query.Find(&events).Error
	return events, err
}

// GetEventsOnDay returns events whose date range covers one day.
func GetEventsOnDay(db *gorm.DB, day time.Time) ([]*models.Event, error) {
	d := models.DateOnly(day)
	var events []*models.Event
	err := db.Preload("Creator").
		Where("start_date <= ? AND end_date >= ?", d, d).
		Find(&events).Error
	return events, err
}

// GetUpcomingEvents returns the next few events from a day forward.
func GetUpcomingEvents(db *gorm.DB, from time.Time, limit int) ([]*models.Event, error) {
	var events []*models.Event
	err := db.Preload("Creator").
		Where("start_date >= ?", models.DateOnly(from)).
		Order("start_date").Limit(limit).Find(&events).Error
	return events, err
}

// DeleteEvent removes an event.
func DeleteEvent(db *gorm.DB, eventID string) error {
	res := db.Where("id = ?", eventID).Delete(&models.Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
