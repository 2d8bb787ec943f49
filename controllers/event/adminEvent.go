package eventController

import (
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateEvent creates an unpublished event
func AdminCreateEvent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEvent").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Mode        string `json:"mode"`
		Location    string `json:"location"`
		BannerURL   string `json:"banner_url"`
		StartsAt    string `json:"starts_at"`
		EndsAt      string `json:"ends_at"`
		Capacity    int    `json:"capacity"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	startsAt, err := time.Parse(time.RFC3339, reqData.StartsAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid starts_at timestamp!", nil)
	}
	endsAt, err := time.Parse(time.RFC3339, reqData.EndsAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ends_at timestamp!", nil)
	}
	if !endsAt.After(startsAt) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Event must end after it starts!", nil)
	}

	event := models.Event{
		Title:       reqData.Title,
		Description: reqData.Description,
		Mode:        reqData.Mode,
		Location:    reqData.Location,
		BannerURL:   reqData.BannerURL,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Capacity:    reqData.Capacity,
	}
	if event.Mode == "" {
		event.Mode = "OFFLINE"
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Event created successfully!", event)
}

// AdminUpdateEvent updates an event
func AdminUpdateEvent(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	reqData, ok := c.Locals("validatedEventUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Mode        string `json:"mode"`
		Location    string `json:"location"`
		BannerURL   string `json:"banner_url"`
		StartsAt    string `json:"starts_at"`
		EndsAt      string `json:"ends_at"`
		Capacity    *int   `json:"capacity"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		event.Title = reqData.Title
	}
	if reqData.Description != "" {
		event.Description = reqData.Description
	}
	if reqData.Mode != "" {
		event.Mode = reqData.Mode
	}
	if reqData.Location != "" {
		event.Location = reqData.Location
	}
	if reqData.BannerURL != "" {
		event.BannerURL = reqData.BannerURL
	}
	if reqData.StartsAt != "" {
		startsAt, err := time.Parse(time.RFC3339, reqData.StartsAt)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid starts_at timestamp!", nil)
		}
		event.StartsAt = startsAt
	}
	if reqData.EndsAt != "" {
		endsAt, err := time.Parse(time.RFC3339, reqData.EndsAt)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ends_at timestamp!", nil)
		}
		event.EndsAt = endsAt
	}
	if reqData.Capacity != nil {
		event.Capacity = *reqData.Capacity
	}

	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event updated successfully!", event)
}

// AdminDeleteEvent soft-deletes an event
func AdminDeleteEvent(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.IsDeleted = true
	event.IsPublished = false
	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event deleted successfully!", nil)
}

// AdminPublishEvent toggles an event live
func AdminPublishEvent(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.IsPublished = true
	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event published successfully!", event)
}

// AdminGetEventRegistrations lists who registered for an event
func AdminGetEventRegistrations(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	var registrations []models.EventRegistration
	if err := database.Database.Db.Where("event_id = ? AND is_deleted = ?", eventID, false).Order("created_at asc").Find(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	type RegistrationWithUser struct {
		models.EventRegistration
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	result := make([]RegistrationWithUser, len(registrations))
	for i, r := range registrations {
		var registeredUser models.User
		database.Database.Db.Where("id = ?", r.UserID).First(&registeredUser)
		result[i] = RegistrationWithUser{
			EventRegistration: r,
			UserName:          registeredUser.Name,
			UserEmail:         registeredUser.Email,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"event":         event,
		"registrations": result,
	})
}
