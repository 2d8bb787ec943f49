package controllers

import (
	"math"
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"

	"github.com/gofiber/fiber/v2"
)

// RecordLessonProgress upserts the caller's progress for a lesson. The
// latest reported value always wins; monotonicity is not enforced.
func RecordLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		LessonID           uint `json:"lesson_id"`
		ProgressPercentage int  `json:"progress_percentage"`
		TimeSpent          *int `json:"time_spent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment required", nil)
	}

	// Check lesson belongs to this course
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", reqData.LessonID, courseID, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	now := time.Now()

	var progress courseModels.LessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, reqData.LessonID, false).First(&progress).Error; err != nil {
		// First access creates the record
		progress = courseModels.LessonProgress{
			UserID:   userID,
			CourseID: uint(courseID),
			LessonID: reqData.LessonID,
		}
	}

	progress.ProgressPercentage = reqData.ProgressPercentage
	progress.LastAccessedAt = &now
	if reqData.TimeSpent != nil {
		progress.TimeSpent += *reqData.TimeSpent
	}
	if progress.ProgressPercentage >= 100 {
		progress.ProgressPercentage = 100
		progress.IsCompleted = true
	}

	if err := db.Save(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	if progress.IsCompleted {
		updateEnrollmentProgress(userID, uint(courseID))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded successfully!", progress)
}

// MarkLessonComplete forces a lesson's progress to 100 and flags completion
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment required", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", lessonID, courseID, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	now := time.Now()

	var progress courseModels.LessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&progress).Error; err != nil {
		progress = courseModels.LessonProgress{
			UserID:   userID,
			CourseID: uint(courseID),
			LessonID: uint(lessonID),
		}
	}

	progress.ProgressPercentage = 100
	progress.IsCompleted = true
	progress.LastAccessedAt = &now

	if err := db.Save(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson complete!", nil)
	}

	updateEnrollmentProgress(userID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", progress)
}

// GetUserProgress returns the caller's enrollment summary and per-lesson records
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment required", nil)
	}

	var progressRecords []courseModels.LessonProgress
	db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&progressRecords)

	var completedIDs []uint
	for _, p := range progressRecords {
		if p.IsCompleted {
			completedIDs = append(completedIDs, p.LessonID)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":    enrollment,
		"lessons":       progressRecords,
		"completed_ids": completedIDs,
	})
}

// overallProgress is the unweighted course completion percentage,
// rounded to the nearest integer
func overallProgress(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// updateEnrollmentProgress recomputes the enrollment summary after a
// lesson completion
func updateEnrollmentProgress(userID uint, courseID uint) {
	db := database.Database.Db

	var totalLessons int64
	var completedLessons int64

	db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).Count(&totalLessons)
	db.Model(&courseModels.LessonProgress{}).Where("user_id = ? AND course_id = ? AND is_completed = ? AND is_deleted = ?", userID, courseID, true, false).Count(&completedLessons)

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)
	enrollment.Progress = overallProgress(completedLessons, totalLessons)

	if enrollment.Progress >= 100 && totalLessons > 0 {
		enrollment.Status = "COMPLETED"
		now := time.Now()
		enrollment.CompletedAt = &now
	} else if enrollment.Progress > 0 {
		enrollment.Status = "IN_PROGRESS"
	}

	db.Save(&enrollment)
}
