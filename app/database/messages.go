package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"school-management-system/app/authz"
	"school-management-system/app/models"
)

// CreateMessage sends a message. The recipient must exist; a reply must
// reference an existing message. Parents are assigned at send time and never
// change, so a reply can only point at an earlier message and threads cannot
// cycle.
func CreateMessage(db *gorm.DB, message *models.Message) error {
	if _, err := GetUserByID(db, message.RecipientID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: recipient does not exist", ErrNotFound)
		}
		return err
	}
	if message.ParentMessageID != nil {
		if _, err := GetMessageByID(db, *message.ParentMessageID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: parent message does not exist", ErrNotFound)
			}
			return err
		}
	}
	message.SentAt = time.Now()
	message.Read = false
	return db.Create(message).Error
}

// GetMessageByID returns one message.
func GetMessageByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	err := db.Where("id = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// GetMessagesForUser returns every message the user sent or received, newest
// first.
func GetMessagesForUser(db *gorm.DB, userID string) ([]*models.Message, error) {
	var messages []*models.Message
	err := db.Preload("Sender").Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("sent_at DESC").Find(&messages).Error
	return messages, err
}

// CountUnreadMessages returns how many received messages a user has not read.
func CountUnreadMessages(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// GetThread returns a message and its replies in send order.
func GetThread(db *gorm.DB, rootID string) ([]*models.Message, error) {
	root, err := GetMessageByID(db, rootID)
	if err != nil {
		return nil, err
	}
	var replies []*models.Message
	if err := db.Preload("Sender").
		Where("parent_message_id = ?", rootID).
		Order("sent_at").Find(&replies).Error; err != nil {
		return nil, err
	}
	return append([]*models.Message{root}, replies...), nil
}

// MarkMessageRead flips the read flag from unread to read. Only the recipient
// may do so; marking an already-read message is a no-op, and the flag is
// never reverted.
func MarkMessageRead(db *gorm.DB, messageID, recipientID string) (*models.Message, error) {
	message, err := GetMessageByID(db, messageID)
	if err != nil {
		return nil, err
	}
	if message.RecipientID != recipientID {
		return nil, fmt.Errorf("%w: only the recipient may mark a message read", authz.ErrForbidden)
	}
	if message.Read {
		return message, nil
	}
	if err := db.Model(message).Update("read", true).Error; err != nil {
		return nil, err
	}
	message.Read = true
	return message, nil
}
