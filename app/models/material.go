package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningMaterial is a teaching resource: either an uploaded file reference
// or an external URL.
type LearningMaterial struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title        string    `json:"title" gorm:"not null" validate:"required"`
	Description  string    `json:"description" gorm:"type:text"`
	MaterialType string    `json:"material_type" gorm:"not null" validate:"required"`
	FilePath     *string   `json:"file_path,omitempty"`
	ExternalURL  *string   `json:"external_url,omitempty"`
	UploadDate   time.Time `json:"upload_date" gorm:"not null;type:date"`
	TeacherID    string    `json:"teacher_id" gorm:"not null;index;type:uuid"`

	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}

func (m *LearningMaterial) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ClassMaterial links a material to a class. Join rows carry no lifecycle of
// their own.
type ClassMaterial struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid"`
	ClassID    string `json:"class_id" gorm:"not null;index;type:uuid"`
	MaterialID string `json:"material_id" gorm:"not null;index;type:uuid"`

	Class    *Class            `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Material *LearningMaterial `json:"material,omitempty" gorm:"foreignKey:MaterialID;references:ID"`
}

func (c *ClassMaterial) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
