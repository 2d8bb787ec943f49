package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminOnly ensures the authenticated caller carries the ADMIN role.
// Runs after JWTMiddleware and reads the role claim the token already
// carries, so no user lookup happens per request.
func AdminOnly(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	role, _ := c.Locals("userRole").(string)
	if role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return c.Next()
}
