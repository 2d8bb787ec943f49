package courseRoutes

import (
	controllers "github.com/Abhishek-ak7/overseas-site-sub002/controllers/course"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	validators "github.com/Abhishek-ak7/overseas-site-sub002/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.AdminList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:course_id", validators.CourseParam(), validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:course_id", validators.CourseParam(), controllers.AdminDeleteCourse)
	adminGroup.Get("/:course_id", validators.CourseParam(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/:course_id/publish", validators.CourseParam(), controllers.AdminPublishCourse)

	// Module management
	adminGroup.Post("/:course_id/module", validators.CourseParam(), validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Get("/:course_id/modules", validators.CourseParam(), controllers.AdminListModules)
	adminGroup.Put("/:course_id/module/:module_id", validators.CourseParam(), validators.ModuleParam(), validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/module/:module_id", validators.CourseParam(), validators.ModuleParam(), controllers.AdminDeleteModule)

	// Lesson management
	adminGroup.Post("/:course_id/module/:module_id/lesson", validators.CourseParam(), validators.ModuleParam(), validators.CreateLesson(), controllers.AdminCreateLesson)

	lessonGroup := app.Group("/admin/lesson", middleware.JWTMiddleware, middleware.AdminOnly)
	lessonGroup.Put("/:lesson_id", validators.LessonParam(), validators.UpdateLesson(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:lesson_id", validators.LessonParam(), controllers.AdminDeleteLesson)
	lessonGroup.Post("/:lesson_id/publish", validators.LessonParam(), controllers.AdminPublishLesson)

	// Enrollment tracking
	adminGroup.Get("/:course_id/enrollments", validators.CourseParam(), controllers.AdminGetCourseEnrollments)
}
