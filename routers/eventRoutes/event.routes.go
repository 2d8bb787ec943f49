package eventRoutes

import (
	eventControllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/event"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	eventValidators "github.com/Abhishek-ak7/overseas-site-sub002/validators/event"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App) {
	eventGroup := app.Group("/event")

	// Public event listing
	eventGroup.Get("/list", eventValidators.EventList(), eventControllers.GetUpcomingEvents)
	eventGroup.Get("/:id", eventValidators.EventParam(), eventControllers.GetEventDetails)
	eventGroup.Post("/:id/register", middleware.JWTMiddleware, eventValidators.EventParam(), eventControllers.RegisterForEvent)

	// Admin management
	adminGroup := app.Group("/admin/event", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/create", eventValidators.CreateEvent(), eventControllers.AdminCreateEvent)
	adminGroup.Put("/:id", eventValidators.EventParam(), eventValidators.UpdateEvent(), eventControllers.AdminUpdateEvent)
	adminGroup.Delete("/:id", eventValidators.EventParam(), eventControllers.AdminDeleteEvent)
	adminGroup.Post("/:id/publish", eventValidators.EventParam(), eventControllers.AdminPublishEvent)
	adminGroup.Get("/:id/registrations", eventValidators.EventParam(), eventControllers.AdminGetEventRegistrations)
}
