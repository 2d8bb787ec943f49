package controllers

import (
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"

	"github.com/gofiber/fiber/v2"
)

// LessonWithProgress is a lesson enriched with the caller's progress and
// its neighbors in the flattened course sequence
type LessonWithProgress struct {
	courseModels.Lesson
	Progress         *courseModels.LessonProgress `json:"progress,omitempty"`
	PreviousLessonID *uint                        `json:"previous_lesson_id"`
	NextLessonID     *uint                        `json:"next_lesson_id"`
}

// ModuleWithLessons is a module with its ordered lessons
type ModuleWithLessons struct {
	courseModels.Module
	Lessons []LessonWithProgress `json:"lessons"`
}

// flattenLessons concatenates every module's lessons in module order, then
// lesson order, into one sequence of lesson IDs. Server-provided ordering is
// preserved as-is.
func flattenLessons(modules []ModuleWithLessons) []uint {
	var sequence []uint
	for _, module := range modules {
		for _, lesson := range module.Lessons {
			sequence = append(sequence, lesson.ID)
		}
	}
	return sequence
}

// lessonIndex locates a lesson in the flattened sequence; -1 if absent
func lessonIndex(sequence []uint, lessonID uint) int {
	for i, id := range sequence {
		if id == lessonID {
			return i
		}
	}
	return -1
}

// linkNeighbors fills PreviousLessonID/NextLessonID from the flattened
// sequence. Boundaries stay nil; there is no wraparound.
func linkNeighbors(modules []ModuleWithLessons) {
	sequence := flattenLessons(modules)
	for mi := range modules {
		for li := range modules[mi].Lessons {
			idx := lessonIndex(sequence, modules[mi].Lessons[li].ID)
			if idx > 0 {
				prev := sequence[idx-1]
				modules[mi].Lessons[li].PreviousLessonID = &prev
			}
			if idx >= 0 && idx < len(sequence)-1 {
				next := sequence[idx+1]
				modules[mi].Lessons[li].NextLessonID = &next
			}
		}
	}
}

// GetCourseLessons returns the full curriculum tree with per-lesson progress
// for enrolled users. No lesson content leaves this handler without access.
func GetCourseLessons(c *fiber.Ctx) error {
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
	if !hasAccess {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, reason, nil)
	}

	// Get modules in order
	var dbModules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&dbModules)

	// Load the caller's progress once, keyed by lesson
	var progressRecords []courseModels.LessonProgress
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&progressRecords)
	progressByLesson := make(map[uint]courseModels.LessonProgress, len(progressRecords))
	for _, p := range progressRecords {
		progressByLesson[p.LessonID] = p
	}

	modules := make([]ModuleWithLessons, len(dbModules))
	for i, module := range dbModules {
		var lessons []courseModels.Lesson
		database.Database.Db.Where("module_id = ? AND is_deleted = ? AND is_published = ?", module.ID, false, true).
			Order("order_index asc").Find(&lessons)

		withProgress := make([]LessonWithProgress, len(lessons))
		for j, lesson := range lessons {
			withProgress[j] = LessonWithProgress{Lesson: lesson}
			if p, found := progressByLesson[lesson.ID]; found {
				record := p
				withProgress[j].Progress = &record
			}
		}

		modules[i] = ModuleWithLessons{Module: module, Lessons: withProgress}
	}

	linkNeighbors(modules)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"course":     course,
		"modules":    modules,
		"enrollment": enrollment,
	})
}

// GetLessonPreview serves a free-preview lesson without enrollment
func GetLessonPreview(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", lessonID, courseID, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !lesson.IsFree {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment required", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson preview fetched successfully!", lesson)
}
