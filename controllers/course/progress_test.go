package controllers

import (
	"testing"

	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"
	validators "github.com/Abhishek-ak7/overseas-site-sub002/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      int
	}{
		{name: "no lessons", completed: 0, total: 0, want: 0},
		{name: "nothing completed", completed: 0, total: 5, want: 0},
		{name: "three quarters", completed: 3, total: 4, want: 75},
		{name: "one third rounds down", completed: 1, total: 3, want: 33},
		{name: "two thirds rounds up", completed: 2, total: 3, want: 67},
		{name: "halfway of eight rounds up", completed: 1, total: 8, want: 13},
		{name: "all completed", completed: 5, total: 5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overallProgress(tt.completed, tt.total))
		})
	}
}

func newProgressApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/course/:id/progress", authAs(userID), validators.GetCourseDetail(), validators.RecordProgress(), RecordLessonProgress)
	app.Post("/course/:id/lesson/:lesson_id/complete", authAs(userID), validators.GetCourseDetail(), validators.LessonParam(), MarkLessonComplete)
	return app
}

func TestRecordLessonProgressLatestWins(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)
	module := courseModels.Module{CourseID: course.ID, Title: "Listening"}
	require.NoError(t, db.Create(&module).Error)
	lesson := seedLesson(t, db, course.ID, module.ID, 1)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)

	app := newProgressApp(user.ID)
	target := "/course/" + itoa(course.ID) + "/progress"

	resp, _ := doJSON(t, app, "POST", target, fiber.Map{"lesson_id": lesson.ID, "progress_percentage": 80})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A lower report overwrites the higher one
	resp, _ = doJSON(t, app, "POST", target, fiber.Map{"lesson_id": lesson.ID, "progress_percentage": 40})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	assert.Equal(t, 40, progress.ProgressPercentage)
	assert.False(t, progress.IsCompleted)

	resp, _ = doJSON(t, app, "POST", target, fiber.Map{"lesson_id": lesson.ID, "progress_percentage": 100})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	assert.Equal(t, 100, progress.ProgressPercentage)
	assert.True(t, progress.IsCompleted)
}

func TestRecordProgressRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)
	module := courseModels.Module{CourseID: course.ID, Title: "Reading"}
	require.NoError(t, db.Create(&module).Error)
	lesson := seedLesson(t, db, course.ID, module.ID, 1)

	app := newProgressApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/progress", fiber.Map{
		"lesson_id": lesson.ID, "progress_percentage": 50,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestMarkLessonCompleteUpdatesEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)
	module := courseModels.Module{CourseID: course.ID, Title: "Writing"}
	require.NoError(t, db.Create(&module).Error)
	first := seedLesson(t, db, course.ID, module.ID, 1)
	second := seedLesson(t, db, course.ID, module.ID, 2)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)

	app := newProgressApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/lesson/"+itoa(first.ID)+"/complete", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, 50, enrollment.Progress)
	assert.Equal(t, 1, enrollment.CompletedLessons)
	assert.Equal(t, 2, enrollment.TotalLessons)
	assert.Equal(t, "IN_PROGRESS", enrollment.Status)
	assert.Nil(t, enrollment.CompletedAt)

	resp, _ = doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/lesson/"+itoa(second.ID)+"/complete", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, 100, enrollment.Progress)
	assert.Equal(t, "COMPLETED", enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
}
