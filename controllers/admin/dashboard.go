package adminController

import (
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns headline counts for the back-office dashboard
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, "USER").Count(&totalUsers)

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var publishedCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)

	var totalEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	var completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND status = ?", false, "COMPLETED").Count(&completedEnrollments)

	var pendingAppointments int64
	db.Model(&models.Appointment{}).Where("is_deleted = ? AND status = ?", false, models.AppointmentPending).Count(&pendingAppointments)

	var upcomingEvents int64
	db.Model(&models.Event{}).Where("is_deleted = ? AND is_published = ? AND starts_at > ?", false, true, time.Now()).Count(&upcomingEvents)

	// Revenue only counts settled orders
	var revenue int64
	db.Model(&models.PaymentOrder{}).Where("is_deleted = ? AND status = ?", false, models.OrderStatusPaid).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":           totalUsers,
		"total_courses":         totalCourses,
		"published_courses":     publishedCourses,
		"total_enrollments":     totalEnrollments,
		"completed_enrollments": completedEnrollments,
		"pending_appointments":  pendingAppointments,
		"upcoming_events":       upcomingEvents,
		"revenue":               revenue,
	})
}
