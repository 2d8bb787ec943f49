package courseValidator

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"

	"github.com/gofiber/fiber/v2"
)

// RecordProgress validates a lesson progress update
func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LessonID           uint `json:"lesson_id"`
			ProgressPercentage int  `json:"progress_percentage"`
			TimeSpent          *int `json:"time_spent"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate LessonID
		if reqData.LessonID == 0 {
			errors["lesson_id"] = "Lesson ID is required!"
		}

		// Validate ProgressPercentage
		if reqData.ProgressPercentage < 0 || reqData.ProgressPercentage > 100 {
			errors["progress_percentage"] = "Progress percentage must be between 0 and 100!"
		}

		// Validate TimeSpent
		if reqData.TimeSpent != nil && *reqData.TimeSpent < 0 {
			errors["time_spent"] = "Time spent cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
