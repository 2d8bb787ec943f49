package appointmentController

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	"github.com/Abhishek-ak7/overseas-site-sub002/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminGetAppointments lists consultation bookings with status filter
func AdminGetAppointments(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedAppointmentList").(*struct {
		Page   *int   `json:"page"`
		Limit  *int   `json:"limit"`
		Status string `json:"status"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Appointment{}).Where("is_deleted = ?", false)
	if reqData != nil && reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	db.Count(&total)

	var appointments []models.Appointment
	if err := db.Offset(offset).Limit(limit).Order("preferred_date asc").Find(&appointments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch appointments!", nil)
	}

	response := map[string]interface{}{
		"appointments": appointments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointments fetched successfully!", response)
}

// AdminUpdateAppointmentStatus moves a booking through its lifecycle
func AdminUpdateAppointmentStatus(c *fiber.Ctx) error {
	appointmentID := c.Locals("appointmentID").(int)

	reqData, ok := c.Locals("validatedAppointmentStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var appointment models.Appointment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", appointmentID, false).First(&appointment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Appointment not found!", nil)
	}

	appointment.Status = reqData.Status
	if err := database.Database.Db.Save(&appointment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update appointment!", nil)
	}

	go utils.SendAppointmentStatusUpdate(appointment.Name, appointment.Email, appointment.BookingReference, appointment.Status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment status updated successfully!", appointment)
}
