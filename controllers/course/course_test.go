package controllers

import (
	"testing"

	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"
	validators "github.com/Abhishek-ak7/overseas-site-sub002/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCatalogApp wires the public catalog exactly as the production router does
func newCatalogApp() *fiber.App {
	app := fiber.New()
	app.Get("/course/:id", middleware.OptionalJWT, validators.GetCourseDetail(), GetCourseDetails)
	return app
}

func TestCourseDetailShowsEnrollmentForLoggedInCaller(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	app := newCatalogApp()
	target := "/course/" + itoa(course.ID)

	resp, payload := doJSONAs(t, app, "GET", target, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_enrolled"])
	assert.NotNil(t, data["enrollment"])
}

func TestCourseDetailGuestSeesNoEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)

	app := newCatalogApp()

	// No token: still a 200, enrollment state simply absent
	resp, payload := doJSON(t, app, "GET", "/course/"+itoa(course.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, false, data["is_enrolled"])

	// A garbage token degrades to guest instead of failing the request
	resp, payload = doJSONAs(t, app, "GET", "/course/"+itoa(course.ID), "not.a.token", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = payload["data"].(map[string]interface{})
	assert.Equal(t, false, data["is_enrolled"])
}
