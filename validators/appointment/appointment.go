package appointmentValidator

import (
	"strconv"
	"strings"

	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BookAppointment validates the public consultation booking form
func BookAppointment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.AppointmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				field := strings.ToLower(fieldErr.Field())
				switch fieldErr.Tag() {
				case "required":
					errors[field] = "This field is required!"
				case "email":
					errors[field] = "Email is invalid!"
				case "oneof":
					errors[field] = "Value must be one of: " + fieldErr.Param()
				case "datetime":
					errors[field] = "Date must be in YYYY-MM-DD format!"
				default:
					errors[field] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAppointment", reqData)
		return c.Next()
	}
}

// AppointmentParam validates the :id route param
func AppointmentParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Appointment ID!", nil)
		}

		c.Locals("appointmentID", id)
		return c.Next()
	}
}

// AppointmentList validates the admin listing query
func AppointmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int   `json:"page"`
			Limit  *int   `json:"limit"`
			Status string `json:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.Status != "" && !isValidAppointmentStatus(reqData.Status) {
			errors["status"] = "Invalid appointment status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAppointmentList", reqData)
		return c.Next()
	}
}

// UpdateStatus validates an appointment status transition payload
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !isValidAppointmentStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be PENDING, CONFIRMED, COMPLETED or CANCELLED!",
			})
		}

		c.Locals("validatedAppointmentStatus", reqData)
		return c.Next()
	}
}

func isValidAppointmentStatus(status string) bool {
	switch status {
	case models.AppointmentPending, models.AppointmentConfirmed, models.AppointmentCompleted, models.AppointmentCancelled:
		return true
	}
	return false
}
