package cmsValidator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"

	"github.com/gofiber/fiber/v2"
)

// PageSlugParam validates the :slug route param
func PageSlugParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid page slug!", nil)
		}

		c.Locals("pageSlug", slug)
		return c.Next()
	}
}

// ItemParam validates the :id route param shared by the content items
func ItemParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals("itemID", id)
		return c.Next()
	}
}

// UpsertPage validates a page create-or-update payload
func UpsertPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Slug        string `json:"slug"`
			Title       string `json:"title"`
			Sections    string `json:"sections"`
			IsPublished *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Sections != "" && !json.Valid([]byte(reqData.Sections)) {
			errors["sections"] = "Sections must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPage", reqData)
		return c.Next()
	}
}

// Partner validates a partner university payload
func Partner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name       string `json:"name"`
			Country    string `json:"country"`
			LogoURL    string `json:"logo_url"`
			WebsiteURL string `json:"website_url"`
			OrderIndex int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPartner", reqData)
		return c.Next()
	}
}

// Testimonial validates a student testimonial payload
func Testimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Author     string `json:"author"`
			University string `json:"university"`
			Country    string `json:"country"`
			Quote      string `json:"quote"`
			PhotoURL   string `json:"photo_url"`
			Rating     uint   `json:"rating"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Author) == "" {
			errors["author"] = "Author is required!"
		}
		if strings.TrimSpace(reqData.Quote) == "" {
			errors["quote"] = "Quote is required!"
		}
		if reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 0 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestimonial", reqData)
		return c.Next()
	}
}

// Statistic validates a homepage statistic payload
func Statistic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID         uint   `json:"id"`
			Label      string `json:"label"`
			Value      int64  `json:"value"`
			Suffix     string `json:"suffix"`
			OrderIndex int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Label) == "" {
			errors["label"] = "Label is required!"
		}
		if reqData.Value < 0 {
			errors["value"] = "Value cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatistic", reqData)
		return c.Next()
	}
}

// JourneyStep validates a journey step payload
func JourneyStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID          uint   `json:"id"`
			StepNumber  int    `json:"step_number"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StepNumber < 1 {
			errors["step_number"] = "Step number must be greater than 0!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJourneyStep", reqData)
		return c.Next()
	}
}
