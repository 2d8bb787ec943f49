package controllers

import (
	"testing"

	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"
	validators "github.com/Abhishek-ak7/overseas-site-sub002/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/course/:id/enroll", authAs(userID), validators.EnrollCourse(), EnrollInCourse)
	return app
}

func TestEnrollFreeCourse(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)

	app := newEnrollmentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/enroll", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "ENROLLED", enrollment.Status)
	assert.Equal(t, uint(0), enrollment.PaymentOrderID)

	// Free enrollment opens no payment order
	var orders int64
	db.Model(&models.PaymentOrder{}).Count(&orders)
	assert.Equal(t, int64(0), orders)
}

func TestEnrollPaidCourseRequiresPurchase(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)

	app := newEnrollmentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/enroll", nil)
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.Equal(t, int64(0), enrollments)
}

func TestEnrollDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)

	app := newEnrollmentApp(user.ID)
	target := "/course/" + itoa(course.ID) + "/enroll"

	resp, _ := doJSON(t, app, "POST", target, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", target, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	course := courseModels.Course{Title: "Draft Course", Currency: "INR", Status: "DRAFT"}
	require.NoError(t, db.Create(&course).Error)

	app := newEnrollmentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/enroll", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
