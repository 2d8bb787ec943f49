package cmsController

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/gofiber/fiber/v2"
)

// GetPage returns a published CMS page with its section blocks
func GetPage(c *fiber.Ctx) error {
	slug := c.Locals("pageSlug").(string)

	var page models.Page
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", slug, false, true).First(&page).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Page not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Page fetched successfully!", page)
}

// GetPartners lists partner universities in display order
func GetPartners(c *fiber.Ctx) error {
	var partners []models.Partner
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("order_index asc").Find(&partners).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partners!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partners fetched successfully!", partners)
}

// GetTestimonials lists published student testimonials
func GetTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).Order("created_at desc").Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", testimonials)
}

// GetStatistics lists headline numbers in display order
func GetStatistics(c *fiber.Ctx) error {
	var statistics []models.Statistic
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("order_index asc").Find(&statistics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", statistics)
}

// GetJourneySteps lists the "your journey" steps in order
func GetJourneySteps(c *fiber.Ctx) error {
	var steps []models.JourneyStep
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("step_number asc").Find(&steps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch journey steps!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Journey steps fetched successfully!", steps)
}
