package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a calendar entry: holiday, meeting, activity and so on.
type Event struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"not null" validate:"required"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   time.Time `json:"start_date" gorm:"not null;index;type:date" validate:"required"`
	EndDate     time.Time `json:"end_date" gorm:"not null;type:date" validate:"required"`
	AllDay      bool      `json:"all_day" gorm:"default:true"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	Location    *string   `json:"location,omitempty"`
	EventType   string    `json:"event_type" gorm:"not null" validate:"required"`
	CreatedBy   string    `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;references:ID"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
