package cmsController

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/gofiber/fiber/v2"
)

// AdminUpsertPage creates a page or replaces its content by slug
func AdminUpsertPage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPage").(*struct {
		Slug        string `json:"slug"`
		Title       string `json:"title"`
		Sections    string `json:"sections"`
		IsPublished *bool  `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var page models.Page
	if err := db.Where("slug = ? AND is_deleted = ?", reqData.Slug, false).First(&page).Error; err != nil {
		page = models.Page{Slug: reqData.Slug}
	}

	if reqData.Title != "" {
		page.Title = reqData.Title
	}
	if reqData.Sections != "" {
		page.Sections = []byte(reqData.Sections)
	}
	if reqData.IsPublished != nil {
		page.IsPublished = *reqData.IsPublished
	}

	if err := db.Save(&page).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save page!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Page saved successfully!", page)
}

// AdminListPages lists all pages including drafts
func AdminListPages(c *fiber.Ctx) error {
	var pages []models.Page
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("slug asc").Find(&pages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pages fetched successfully!", pages)
}

// AdminDeletePage soft-deletes a page
func AdminDeletePage(c *fiber.Ctx) error {
	slug := c.Locals("pageSlug").(string)

	var page models.Page
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", slug, false).First(&page).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Page not found!", nil)
	}

	page.IsDeleted = true
	page.IsPublished = false
	if err := database.Database.Db.Save(&page).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete page!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Page deleted successfully!", nil)
}

// AdminCreatePartner adds a partner university
func AdminCreatePartner(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPartner").(*struct {
		Name       string `json:"name"`
		Country    string `json:"country"`
		LogoURL    string `json:"logo_url"`
		WebsiteURL string `json:"website_url"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	partner := models.Partner{
		Name:       reqData.Name,
		Country:    reqData.Country,
		LogoURL:    reqData.LogoURL,
		WebsiteURL: reqData.WebsiteURL,
		OrderIndex: reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&partner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Partner created successfully!", partner)
}

// AdminUpdatePartner updates a partner entry
func AdminUpdatePartner(c *fiber.Ctx) error {
	partnerID := c.Locals("itemID").(int)

	var partner models.Partner
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", partnerID, false).First(&partner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	reqData, ok := c.Locals("validatedPartner").(*struct {
		Name       string `json:"name"`
		Country    string `json:"country"`
		LogoURL    string `json:"logo_url"`
		WebsiteURL string `json:"website_url"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		partner.Name = reqData.Name
	}
	if reqData.Country != "" {
		partner.Country = reqData.Country
	}
	if reqData.LogoURL != "" {
		partner.LogoURL = reqData.LogoURL
	}
	if reqData.WebsiteURL != "" {
		partner.WebsiteURL = reqData.WebsiteURL
	}
	if reqData.OrderIndex != 0 {
		partner.OrderIndex = reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&partner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner updated successfully!", partner)
}

// AdminDeletePartner soft-deletes a partner entry
func AdminDeletePartner(c *fiber.Ctx) error {
	partnerID := c.Locals("itemID").(int)

	var partner models.Partner
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", partnerID, false).First(&partner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	partner.IsDeleted = true
	if err := database.Database.Db.Save(&partner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner deleted successfully!", nil)
}

// AdminCreateTestimonial adds a testimonial in draft state
func AdminCreateTestimonial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTestimonial").(*struct {
		Author     string `json:"author"`
		University string `json:"university"`
		Country    string `json:"country"`
		Quote      string `json:"quote"`
		PhotoURL   string `json:"photo_url"`
		Rating     uint   `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	testimonial := models.Testimonial{
		Author:     reqData.Author,
		University: reqData.University,
		Country:    reqData.Country,
		Quote:      reqData.Quote,
		PhotoURL:   reqData.PhotoURL,
		Rating:     reqData.Rating,
	}
	if testimonial.Rating == 0 || testimonial.Rating > 5 {
		testimonial.Rating = 5
	}

	if err := database.Database.Db.Create(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial created successfully!", testimonial)
}

// AdminPublishTestimonial toggles a testimonial live
func AdminPublishTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Locals("itemID").(int)

	var testimonial models.Testimonial
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", testimonialID, false).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	testimonial.IsPublished = true
	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial published successfully!", testimonial)
}

// AdminDeleteTestimonial soft-deletes a testimonial
func AdminDeleteTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Locals("itemID").(int)

	var testimonial models.Testimonial
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", testimonialID, false).First(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	testimonial.IsDeleted = true
	testimonial.IsPublished = false
	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully!", nil)
}

// AdminSaveStatistic creates or updates a headline statistic
func AdminSaveStatistic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatistic").(*struct {
		ID         uint   `json:"id"`
		Label      string `json:"label"`
		Value      int64  `json:"value"`
		Suffix     string `json:"suffix"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var statistic models.Statistic
	if reqData.ID != 0 {
		if err := db.Where("id = ? AND is_deleted = ?", reqData.ID, false).First(&statistic).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Statistic not found!", nil)
		}
	}

	statistic.Label = reqData.Label
	statistic.Value = reqData.Value
	statistic.Suffix = reqData.Suffix
	statistic.OrderIndex = reqData.OrderIndex

	if err := db.Save(&statistic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save statistic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistic saved successfully!", statistic)
}

// AdminDeleteStatistic soft-deletes a statistic
func AdminDeleteStatistic(c *fiber.Ctx) error {
	statisticID := c.Locals("itemID").(int)

	var statistic models.Statistic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", statisticID, false).First(&statistic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Statistic not found!", nil)
	}

	statistic.IsDeleted = true
	if err := database.Database.Db.Save(&statistic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete statistic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistic deleted successfully!", nil)
}

// AdminSaveJourneyStep creates or updates a journey step
func AdminSaveJourneyStep(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJourneyStep").(*struct {
		ID          uint   `json:"id"`
		StepNumber  int    `json:"step_number"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var step models.JourneyStep
	if reqData.ID != 0 {
		if err := db.Where("id = ? AND is_deleted = ?", reqData.ID, false).First(&step).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Journey step not found!", nil)
		}
	}

	step.StepNumber = reqData.StepNumber
	step.Title = reqData.Title
	step.Description = reqData.Description
	step.Icon = reqData.Icon

	if err := db.Save(&step).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save journey step!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Journey step saved successfully!", step)
}

// AdminDeleteJourneyStep soft-deletes a journey step
func AdminDeleteJourneyStep(c *fiber.Ctx) error {
	stepID := c.Locals("itemID").(int)

	var step models.JourneyStep
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", stepID, false).First(&step).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Journey step not found!", nil)
	}

	step.IsDeleted = true
	if err := database.Database.Db.Save(&step).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete journey step!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Journey step deleted successfully!", nil)
}
