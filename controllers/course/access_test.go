package controllers

import (
	"testing"

	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"
	validators "github.com/Abhishek-ak7/overseas-site-sub002/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLessonApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Get("/course/:id/access", authAs(userID), validators.GetCourseDetail(), CheckCourseAccess)
	app.Get("/course/:id/lessons", authAs(userID), validators.GetCourseDetail(), GetCourseLessons)
	app.Get("/course/:id/lesson/:lesson_id/preview", validators.GetCourseDetail(), validators.LessonParam(), GetLessonPreview)
	return app
}

func TestLessonsRequireEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	module := courseModels.Module{CourseID: course.ID, Title: "Speaking"}
	require.NoError(t, db.Create(&module).Error)
	seedLesson(t, db, course.ID, module.ID, 1)

	app := newLessonApp(user.ID)

	resp, payload := doJSON(t, app, "GET", "/course/"+itoa(course.ID)+"/lessons", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Enrollment required", payload["message"])
}

func TestLessonsVisibleAfterEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)
	module := courseModels.Module{CourseID: course.ID, Title: "Speaking"}
	require.NoError(t, db.Create(&module).Error)
	seedLesson(t, db, course.ID, module.ID, 1)
	seedLesson(t, db, course.ID, module.ID, 2)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)

	app := newLessonApp(user.ID)

	resp, payload := doJSON(t, app, "GET", "/course/"+itoa(course.ID)+"/lessons", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	modules := data["modules"].([]interface{})
	require.Len(t, modules, 1)
	lessons := modules[0].(map[string]interface{})["lessons"].([]interface{})
	assert.Len(t, lessons, 2)

	// Boundary lessons carry nil neighbor links
	first := lessons[0].(map[string]interface{})
	assert.Nil(t, first["previous_lesson_id"])
	assert.NotNil(t, first["next_lesson_id"])
}

func TestCheckCourseAccess(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)

	app := newLessonApp(user.ID)
	target := "/course/" + itoa(course.ID) + "/access"

	resp, payload := doJSON(t, app, "GET", target, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, false, data["has_access"])

	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)

	resp, payload = doJSON(t, app, "GET", target, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["has_access"])
}

func TestLessonPreviewOnlyForFreeLessons(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 499900)
	module := courseModels.Module{CourseID: course.ID, Title: "Speaking"}
	require.NoError(t, db.Create(&module).Error)

	free := seedLesson(t, db, course.ID, module.ID, 1)
	free.IsFree = true
	require.NoError(t, db.Save(&free).Error)

	locked := seedLesson(t, db, course.ID, module.ID, 2)

	app := newLessonApp(0)

	resp, _ := doJSON(t, app, "GET", "/course/"+itoa(course.ID)+"/lesson/"+itoa(free.ID)+"/preview", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/course/"+itoa(course.ID)+"/lesson/"+itoa(locked.ID)+"/preview", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
