package courseRoutes

import (
	controllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/course"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	validators "github.com/Abhishek-ak7/overseas-site-sub002/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course catalog (public, published courses only; logged-in callers get
	// their enrollment state attached)
	userGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.OptionalJWT, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Free lesson preview (no login required)
	userGroup.Get("/:id/lesson/:lesson_id/preview", validators.GetCourseDetail(), validators.LessonParam(), controllers.GetLessonPreview)

	// Access check and enrollment
	userGroup.Get("/:id/access", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.CheckCourseAccess)
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.GetCourseDetail(), validators.EnrollCourse(), controllers.EnrollInCourse)

	// Payment checkout flow
	userGroup.Post("/:id/purchase", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.PurchaseCourse)
	userGroup.Post("/:id/verify-payment", middleware.JWTMiddleware, validators.GetCourseDetail(), validators.VerifyPayment(), controllers.VerifyPayment)
	userGroup.Post("/:id/purchase/:order_id/cancel", middleware.JWTMiddleware, validators.GetCourseDetail(), validators.OrderParam(), controllers.CancelPaymentOrder)

	// Lesson navigation (for enrolled users)
	userGroup.Get("/:id/lessons", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseLessons)

	// Progress tracking
	userGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.GetCourseDetail(), validators.RecordProgress(), controllers.RecordLessonProgress)
	userGroup.Post("/:id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.GetCourseDetail(), validators.LessonParam(), controllers.MarkLessonComplete)
	userGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetUserProgress)

	// User enrollments
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, validators.GetUserEnrollments(), controllers.GetUserEnrollmentsList)
}
