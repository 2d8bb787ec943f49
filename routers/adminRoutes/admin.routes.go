package adminRoutes

import (
	adminControllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/admin"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly)

	dashGroup.Get("/stats", adminControllers.AdminDashboardStats)
}
