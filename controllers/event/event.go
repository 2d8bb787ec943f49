package eventController

import (
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/gofiber/fiber/v2"
)

// GetUpcomingEvents lists published future events for the public site
func GetUpcomingEvents(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedEventList").(*struct {
		Page  *int   `json:"page"`
		Limit *int   `json:"limit"`
		Mode  string `json:"mode"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Event{}).
		Where("is_deleted = ? AND is_published = ? AND starts_at > ?", false, true, time.Now())
	if reqData != nil && reqData.Mode != "" {
		db = db.Where("mode = ?", reqData.Mode)
	}

	var total int64
	db.Count(&total)

	var events []models.Event
	if err := db.Offset(offset).Limit(limit).Order("starts_at asc").Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}

	response := map[string]interface{}{
		"events": events,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", response)
}

// GetEventDetails returns a single published event
func GetEventDetails(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", eventID, false, true).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	var registered int64
	database.Database.Db.Model(&models.EventRegistration{}).Where("event_id = ? AND status = ? AND is_deleted = ?", eventID, "REGISTERED", false).Count(&registered)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event fetched successfully!", fiber.Map{
		"event":            event,
		"registered_count": registered,
	})
}

// RegisterForEvent registers the caller for an event, capacity permitting
func RegisterForEvent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", eventID, false, true).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	if event.StartsAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Event has already started!", nil)
	}

	// Duplicate registration
	var existing models.EventRegistration
	if err := database.Database.Db.Where("event_id = ? AND user_id = ? AND is_deleted = ?", eventID, userID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already registered for this event!", nil)
	}

	// Capacity check; zero capacity means unlimited
	if event.Capacity > 0 {
		var registered int64
		database.Database.Db.Model(&models.EventRegistration{}).Where("event_id = ? AND status = ? AND is_deleted = ?", eventID, "REGISTERED", false).Count(&registered)
		if registered >= int64(event.Capacity) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Event is fully booked!", nil)
		}
	}

	registration := models.EventRegistration{
		EventID: uint(eventID),
		UserID:  userID,
		Status:  "REGISTERED",
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&registration).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register for event!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registered for event successfully!", registration)
}
