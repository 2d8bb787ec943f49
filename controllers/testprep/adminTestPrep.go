package testPrepController

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateTestPrep creates a test-prep offering
func AdminCreateTestPrep(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTestPrep").(*struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		Fee         int64  `json:"fee"`
		Currency    string `json:"currency"`
		Features    string `json:"features"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Slug must be unique
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", reqData.Slug, false).First(&models.TestPrep{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug already in use!", nil)
	}

	offering := models.TestPrep{
		Name:        reqData.Name,
		Slug:        reqData.Slug,
		Description: reqData.Description,
		Duration:    reqData.Duration,
		Fee:         reqData.Fee,
		Currency:    reqData.Currency,
	}
	if reqData.Features != "" {
		offering.Features = []byte(reqData.Features)
	}
	if offering.Currency == "" {
		offering.Currency = "INR"
	}

	if err := database.Database.Db.Create(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test preparation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test preparation created successfully!", offering)
}

// AdminUpdateTestPrep updates an offering
func AdminUpdateTestPrep(c *fiber.Ctx) error {
	testID := c.Locals("testID").(int)

	var offering models.TestPrep
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", testID, false).First(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test preparation not found!", nil)
	}

	reqData, ok := c.Locals("validatedTestPrepUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Duration    *int   `json:"duration"`
		Fee         *int64 `json:"fee"`
		Currency    string `json:"currency"`
		Features    string `json:"features"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		offering.Name = reqData.Name
	}
	if reqData.Description != "" {
		offering.Description = reqData.Description
	}
	if reqData.Duration != nil {
		offering.Duration = *reqData.Duration
	}
	if reqData.Fee != nil {
		offering.Fee = *reqData.Fee
	}
	if reqData.Currency != "" {
		offering.Currency = reqData.Currency
	}
	if reqData.Features != "" {
		offering.Features = []byte(reqData.Features)
	}

	if err := database.Database.Db.Save(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update test preparation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test preparation updated successfully!", offering)
}

// AdminDeleteTestPrep soft-deletes an offering
func AdminDeleteTestPrep(c *fiber.Ctx) error {
	testID := c.Locals("testID").(int)

	var offering models.TestPrep
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", testID, false).First(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test preparation not found!", nil)
	}

	offering.IsDeleted = true
	offering.IsPublished = false
	if err := database.Database.Db.Save(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete test preparation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test preparation deleted successfully!", nil)
}

// AdminPublishTestPrep toggles an offering live
func AdminPublishTestPrep(c *fiber.Ctx) error {
	testID := c.Locals("testID").(int)

	var offering models.TestPrep
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", testID, false).First(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test preparation not found!", nil)
	}

	offering.IsPublished = true
	if err := database.Database.Db.Save(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish test preparation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test preparation published successfully!", offering)
}
