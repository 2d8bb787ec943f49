package appointmentRoutes

import (
	appointmentControllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/appointment"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	appointmentValidators "github.com/Abhishek-ak7/overseas-site-sub002/validators/appointment"

	"github.com/gofiber/fiber/v2"
)

func SetupAppointmentRoutes(app *fiber.App) {
	appointmentGroup := app.Group("/appointment")

	// Public consultation booking; logged-in callers get the booking
	// attached to their account
	appointmentGroup.Post("/book", middleware.OptionalJWT, appointmentValidators.BookAppointment(), appointmentControllers.BookAppointment)
	appointmentGroup.Get("/my", middleware.JWTMiddleware, appointmentControllers.GetMyAppointments)

	// Admin management
	adminGroup := app.Group("/admin/appointment", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Get("/list", appointmentValidators.AppointmentList(), appointmentControllers.AdminGetAppointments)
	adminGroup.Patch("/:id/status", appointmentValidators.AppointmentParam(), appointmentValidators.UpdateStatus(), appointmentControllers.AdminUpdateAppointmentStatus)
}
