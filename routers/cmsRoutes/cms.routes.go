package cmsRoutes

import (
	cmsControllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/cms"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	cmsValidators "github.com/Abhishek-ak7/overseas-site-sub002/validators/cms"

	"github.com/gofiber/fiber/v2"
)

func SetupCmsRoutes(app *fiber.App) {
	contentGroup := app.Group("/content")

	// Public site content
	contentGroup.Get("/page/:slug", cmsValidators.PageSlugParam(), cmsControllers.GetPage)
	contentGroup.Get("/partners", cmsControllers.GetPartners)
	contentGroup.Get("/testimonials", cmsControllers.GetTestimonials)
	contentGroup.Get("/statistics", cmsControllers.GetStatistics)
	contentGroup.Get("/journey", cmsControllers.GetJourneySteps)

	// Admin content management
	adminGroup := app.Group("/admin/content", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Post("/page", cmsValidators.UpsertPage(), cmsControllers.AdminUpsertPage)
	adminGroup.Get("/pages", cmsControllers.AdminListPages)
	adminGroup.Delete("/page/:slug", cmsValidators.PageSlugParam(), cmsControllers.AdminDeletePage)

	adminGroup.Post("/partner", cmsValidators.Partner(), cmsControllers.AdminCreatePartner)
	adminGroup.Put("/partner/:id", cmsValidators.ItemParam(), cmsValidators.Partner(), cmsControllers.AdminUpdatePartner)
	adminGroup.Delete("/partner/:id", cmsValidators.ItemParam(), cmsControllers.AdminDeletePartner)

	adminGroup.Post("/testimonial", cmsValidators.Testimonial(), cmsControllers.AdminCreateTestimonial)
	adminGroup.Post("/testimonial/:id/publish", cmsValidators.ItemParam(), cmsControllers.AdminPublishTestimonial)
	adminGroup.Delete("/testimonial/:id", cmsValidators.ItemParam(), cmsControllers.AdminDeleteTestimonial)

	adminGroup.Post("/statistic", cmsValidators.Statistic(), cmsControllers.AdminSaveStatistic)
	adminGroup.Delete("/statistic/:id", cmsValidators.ItemParam(), cmsControllers.AdminDeleteStatistic)

	adminGroup.Post("/journey", cmsValidators.JourneyStep(), cmsControllers.AdminSaveJourneyStep)
	adminGroup.Delete("/journey/:id", cmsValidators.ItemParam(), cmsControllers.AdminDeleteJourneyStep)
}
