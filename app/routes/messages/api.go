package messages

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/authz"
	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

// ListMessagesAPI returns the caller's inbox and outbox, newest first.
func ListMessagesAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		messages, err := database.GetMessagesForUser(db, user.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(messages)
	}
}

func SendMessageAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type MessageRequest struct {
			RecipientID     string  `json:"recipient_id" validate:"required,uuid"`
			Subject         string  `json:"subject" validate:"required"`
			Content         string  `json:"content" validate:"required"`
			ParentMessageID *string `json:"parent_message_id"`
		}

		var req MessageRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		user := c.Locals("user").(*models.User)
		message := &models.Message{
			SenderID:        user.ID,
			RecipientID:     req.RecipientID,
			Subject:         req.Subject,
			Content:         req.Content,
			ParentMessageID: req.ParentMessageID,
		}
		if err := database.CreateMessage(db, message); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(message)
	}
}

// GetThreadAPI returns a root message and its replies in send order. Only a
// participant of the root message may read the thread.
func GetThreadAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		root, err := database.GetMessageByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		if root.SenderID != user.ID && root.RecipientID != user.ID {
			return apiutil.Error(c, authz.ErrForbidden)
		}

		thread, err := database.GetThread(db, root.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(thread)
	}
}

func MarkReadAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		message, err := database.MarkMessageRead(db, c.Params("id"), user.ID)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(message)
	}
}
