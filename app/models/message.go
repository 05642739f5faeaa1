package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a note between two users. Replies reference an existing parent
// message; root messages have no parent. The read flag flips from false to
// true exactly once and is never reverted.
type Message struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	SenderID        string    `json:"sender_id" gorm:"not null;index;type:uuid"`
	RecipientID     string    `json:"recipient_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Subject         string    `json:"subject" gorm:"not null" validate:"required"`
	Content         string    `json:"content" gorm:"not null;type:text" validate:"required"`
	SentAt          time.Time `json:"sent_at" gorm:"not null;index"`
	Read            bool      `json:"read" gorm:"default:false"`
	ParentMessageID *string   `json:"parent_message_id,omitempty" gorm:"index;type:uuid"`

	Sender    *User `json:"sender,omitempty" gorm:"foreignKey:SenderID;references:ID"`
	Recipient *User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID;references:ID"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
