package appointmentController

import (
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	"github.com/Abhishek-ak7/overseas-site-sub002/utils"

	"github.com/gofiber/fiber/v2"
)

// BookAppointment creates a consultation booking from the public site.
// Guests may book; logged-in callers get the booking attached to their account.
func BookAppointment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAppointment").(*models.AppointmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Optional authentication
	userID, _ := c.Locals("userId").(uint)

	preferredDate, err := time.Parse("2006-01-02", reqData.PreferredDate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid preferred date!", nil)
	}
	if preferredDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Preferred date must be in the future!", nil)
	}

	appointment := models.Appointment{
		UserID:             userID,
		BookingReference:   utils.GenerateBookingReference(),
		Name:               reqData.Name,
		Email:              reqData.Email,
		Mobile:             reqData.Mobile,
		DestinationCountry: reqData.DestinationCountry,
		Service:            reqData.Service,
		Message:            reqData.Message,
		PreferredDate:      preferredDate,
		PreferredSlot:      reqData.PreferredSlot,
		Status:             models.AppointmentPending,
	}

	if err := database.Database.Db.Create(&appointment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to book appointment!", nil)
	}

	go utils.SendAppointmentConfirmation(appointment.Name, appointment.Email, appointment.BookingReference, appointment.PreferredDate, appointment.PreferredSlot)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Appointment booked successfully!", fiber.Map{
		"booking_reference": appointment.BookingReference,
		"appointment":       appointment,
	})
}

// GetMyAppointments lists the caller's consultation bookings
func GetMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var appointments []models.Appointment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("preferred_date desc").Find(&appointments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch appointments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointments fetched successfully!", appointments)
}
