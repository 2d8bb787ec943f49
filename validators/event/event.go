package eventValidator

import (
	"strconv"
	"strings"

	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"

	"github.com/gofiber/fiber/v2"
)

// EventParam validates the :id route param
func EventParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Event ID!", nil)
		}

		c.Locals("eventID", id)
		return c.Next()
	}
}

// EventList validates the public listing query
func EventList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int   `json:"page"`
			Limit *int   `json:"limit"`
			Mode  string `json:"mode"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.Mode != "" && reqData.Mode != "ONLINE" && reqData.Mode != "OFFLINE" && reqData.Mode != "HYBRID" {
			errors["mode"] = "Mode must be ONLINE, OFFLINE or HYBRID!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEventList", reqData)
		return c.Next()
	}
}

// CreateEvent validates a new event payload
func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Mode        string `json:"mode"`
			Location    string `json:"location"`
			BannerURL   string `json:"banner_url"`
			StartsAt    string `json:"starts_at"`
			EndsAt      string `json:"ends_at"`
			Capacity    int    `json:"capacity"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.StartsAt) == "" {
			errors["starts_at"] = "Start time is required!"
		}
		if strings.TrimSpace(reqData.EndsAt) == "" {
			errors["ends_at"] = "End time is required!"
		}
		if reqData.Mode != "" && reqData.Mode != "ONLINE" && reqData.Mode != "OFFLINE" && reqData.Mode != "HYBRID" {
			errors["mode"] = "Mode must be ONLINE, OFFLINE or HYBRID!"
		}
		if reqData.Mode != "ONLINE" && strings.TrimSpace(reqData.Location) == "" {
			errors["location"] = "Location is required for offline events!"
		}
		if reqData.Capacity < 0 {
			errors["capacity"] = "Capacity cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvent", reqData)
		return c.Next()
	}
}

// UpdateEvent validates an event update payload
func UpdateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Mode        string `json:"mode"`
			Location    string `json:"location"`
			BannerURL   string `json:"banner_url"`
			StartsAt    string `json:"starts_at"`
			EndsAt      string `json:"ends_at"`
			Capacity    *int   `json:"capacity"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Mode != "" && reqData.Mode != "ONLINE" && reqData.Mode != "OFFLINE" && reqData.Mode != "HYBRID" {
			errors["mode"] = "Mode must be ONLINE, OFFLINE or HYBRID!"
		}
		if reqData.Capacity != nil && *reqData.Capacity < 0 {
			errors["capacity"] = "Capacity cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEventUpdate", reqData)
		return c.Next()
	}
}
