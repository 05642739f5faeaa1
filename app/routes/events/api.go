package events

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

func ListEventsAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var from, to *time.Time
		if v := c.Query("from"); v != "" {
			day, err := time.Parse("2006-01-02", v)
			if err != nil {
				return apiutil.BadRequest(c, "from must be YYYY-MM-DD")
			}
			from = &day
		}
		if v := c.Query("to"); v != "" {
			day, err := time.Parse("2006-01-02", v)
			if err != nil {
				return apiutil.BadRequest(c, "to must be YYYY-MM-DD")
			}
			to = &day
		}

		events, err := database.GetEvents(db, from, to, c.Query("type"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(events)
	}
}

func GetEventAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := database.GetEventByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(event)
	}
}

func GetUpcomingEventsAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 5)
		events, err := database.GetUpcomingEvents(db, time.Now(), limit)
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(events)
	}
}

func CreateEventAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type EventRequest struct {
			Title       string  `json:"title" validate:"required"`
			Description string  `json:"description"`
			StartDate   string  `json:"start_date" validate:"required"`
			EndDate     string  `json:"end_date" validate:"required"`
			AllDay      *bool   `json:"all_day"`
			StartTime   *string `json:"start_time"`
			EndTime     *string `json:"end_time"`
			Location    *string `json:"location"`
			EventType   string  `json:"event_type" validate:"required"`
		}

		var req EventRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return apiutil.BadRequest(c, "start_date must be YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return apiutil.BadRequest(c, "end_date must be YYYY-MM-DD")
		}
		if end.Before(start) {
			return apiutil.BadRequest(c, "end_date must not precede start_date")
		}

		user := c.Locals("user").(*models.User)
		event := &models.Event{
			Title:       req.Title,
			Description: req.Description,
			StartDate:   start,
			EndDate:     end,
			AllDay:      true,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Location:    req.Location,
			EventType:   req.EventType,
			CreatedBy:   user.ID,
		}
		if req.AllDay != nil {
			event.AllDay = *req.AllDay
		}
		if err := database.CreateEvent(db, event); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(event)
	}
}

func DeleteEventAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteEvent(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Event deleted"})
	}
}
