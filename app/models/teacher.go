package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Teacher is the staff profile linked one-to-one with a teacher-role user.
type Teacher struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	Specialization string    `json:"specialization" gorm:"not null" validate:"required"`
	UserID         string    `json:"user_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Classes []*Class `json:"classes,omitempty" gorm:"foreignKey:TeacherID"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
