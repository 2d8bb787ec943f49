package authRoutes

import (
	authControllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/auth"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	authValidators "github.com/Abhishek-ak7/overseas-site-sub002/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)

	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, authControllers.GetProfile)
}
