package testRoutes

import (
	testPrepControllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/testprep"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	testPrepValidators "github.com/Abhishek-ak7/overseas-site-sub002/validators/testprep"

	"github.com/gofiber/fiber/v2"
)

func SetupTestPrepRoutes(app *fiber.App) {
	testGroup := app.Group("/test")

	// Public test preparation catalog
	testGroup.Get("/list", testPrepControllers.GetTestPrepList)
	testGroup.Get("/:slug", testPrepValidators.TestSlugParam(), testPrepControllers.GetTestPrepDetails)

	// Admin management
	adminGroup := app.Group("/admin/test", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/create", testPrepValidators.CreateTestPrep(), testPrepControllers.AdminCreateTestPrep)
	adminGroup.Put("/:id", testPrepValidators.TestParam(), testPrepValidators.UpdateTestPrep(), testPrepControllers.AdminUpdateTestPrep)
	adminGroup.Delete("/:id", testPrepValidators.TestParam(), testPrepControllers.AdminDeleteTestPrep)
	adminGroup.Post("/:id/publish", testPrepValidators.TestParam(), testPrepControllers.AdminPublishTestPrep)
}
