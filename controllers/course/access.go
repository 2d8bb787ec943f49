package controllers

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseAccess resolves whether a user may view a course's lesson content.
// An active enrollment is the sole gate; price is never re-checked here.
func courseAccess(db *gorm.DB, userID, courseID uint) (bool, string, *courseModels.Enrollment) {
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return false, "Enrollment required", nil
	}
	return true, "", &enrollment
}

// CheckCourseAccess gates lesson viewing for the frontend
func CheckCourseAccess(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	hasAccess, reason, enrollment := courseAccess(database.Database.Db, userID, course.ID)

	if !hasAccess && !course.IsFree() {
		reason = "Purchase required"
	}

	resp := fiber.Map{
		"has_access": hasAccess,
		"reason":     reason,
		"course":     course,
	}
	if enrollment != nil {
		resp["enrollment"] = enrollment
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access evaluated successfully!", resp)
}
