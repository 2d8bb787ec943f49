package testPrepValidator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"

	"github.com/gofiber/fiber/v2"
)

// TestSlugParam validates the :slug route param
func TestSlugParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test slug!", nil)
		}

		c.Locals("testSlug", slug)
		return c.Next()
	}
}

// TestParam validates the :id route param
func TestParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Test ID!", nil)
		}

		c.Locals("testID", id)
		return c.Next()
	}
}

// CreateTestPrep validates a new test preparation program payload
func CreateTestPrep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Slug        string `json:"slug"`
			Description string `json:"description"`
			Duration    int    `json:"duration"`
			Fee         int64  `json:"fee"`
			Currency    string `json:"currency"`
			Features    string `json:"features"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}
		if reqData.Fee < 0 {
			errors["fee"] = "Fee cannot be negative!"
		}
		if reqData.Features != "" && !json.Valid([]byte(reqData.Features)) {
			errors["features"] = "Features must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestPrep", reqData)
		return c.Next()
	}
}

// UpdateTestPrep validates a test preparation update payload
func UpdateTestPrep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Duration    *int   `json:"duration"`
			Fee         *int64 `json:"fee"`
			Currency    string `json:"currency"`
			Features    string `json:"features"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}
		if reqData.Fee != nil && *reqData.Fee < 0 {
			errors["fee"] = "Fee cannot be negative!"
		}
		if reqData.Features != "" && !json.Valid([]byte(reqData.Features)) {
			errors["features"] = "Features must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestPrepUpdate", reqData)
		return c.Next()
	}
}
