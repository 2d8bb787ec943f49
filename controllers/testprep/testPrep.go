package testPrepController

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/gofiber/fiber/v2"
)

// GetTestPrepList lists published test-prep offerings for the public site
func GetTestPrepList(c *fiber.Ctx) error {
	var offerings []models.TestPrep
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).Order("created_at asc").Find(&offerings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test preparations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test preparations fetched successfully!", offerings)
}

// GetTestPrepDetails returns one published offering by slug
func GetTestPrepDetails(c *fiber.Ctx) error {
	slug := c.Locals("testSlug").(string)

	var offering models.TestPrep
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", slug, false, true).First(&offering).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test preparation not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test preparation fetched successfully!", offering)
}
