package main

import (
	"log"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	adminRoutes "github.com/Abhishek-ak7/overseas-site-sub002/routers/adminRoutes"
	appointmentRoutes "github.com/Abhishek-ak7/overseas-site-sub002/routers/appointmentRoutes"
	authRoutes "github.com/Abhishek-ak7/overseas-site-sub002/routers/authRoutes"
	cmsRoutes "github.com/Abhishek-ak7/overseas-site-sub002/routers/cmsRoutes"
	courseRoutes "github.com/Abhishek-ak7/overseas-site-sub002/routers/courseRoutes"
	eventRoutes "github.com/Abhishek-ak7/overseas-site-sub002/routers/eventRoutes"
	testRoutes "github.com/Abhishek-ak7/overseas-site-sub002/routers/testRoutes"
	"github.com/Abhishek-ak7/overseas-site-sub002/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	appointmentRoutes.SetupAppointmentRoutes(app)
	eventRoutes.SetupEventRoutes(app)
	testRoutes.SetupTestPrepRoutes(app)
	cmsRoutes.SetupCmsRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Daily reminder emails for upcoming confirmed appointments
	utils.InitializeAppointmentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
