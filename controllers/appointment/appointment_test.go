package appointmentController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	appointmentValidators "github.com/Abhishek-ak7/overseas-site-sub002/validators/appointment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Appointment{}))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		JWTKey:         "test-secret",
		JWTExpiryHours: 24,
		SiteBaseURL:    "http://localhost:3000",
	}
	return db
}

func newBookingApp() *fiber.App {
	app := fiber.New()
	app.Post("/appointment/book", middleware.OptionalJWT, appointmentValidators.BookAppointment(), BookAppointment)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	return doJSONAs(t, app, method, target, "", body)
}

func doJSONAs(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func bookingBody(date string) fiber.Map {
	return fiber.Map{
		"name":                "Asha Verma",
		"email":               "asha@example.com",
		"mobile":              "9876543210",
		"destination_country": "Canada",
		"service":             "COUNSELLING",
		"message":             "Interested in fall intake",
		"preferred_date":      date,
		"preferred_slot":      "10:00-11:00",
	}
}

func TestBookAppointmentAsGuest(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	resp, payload := doJSON(t, app, "POST", "/appointment/book", bookingBody(tomorrow))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	reference := data["booking_reference"].(string)
	assert.True(t, strings.HasPrefix(reference, "APT-"))

	var appointment models.Appointment
	require.NoError(t, db.Where("booking_reference = ?", reference).First(&appointment).Error)
	assert.Equal(t, models.AppointmentPending, appointment.Status)
	assert.Equal(t, uint(0), appointment.UserID)
	assert.Equal(t, "COUNSELLING", appointment.Service)
}

func TestBookAppointmentAttachesLoggedInUser(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	user := models.User{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Role:     "USER",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	resp, payload := doJSONAs(t, app, "POST", "/appointment/book", token, bookingBody(tomorrow))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	reference := data["booking_reference"].(string)

	var appointment models.Appointment
	require.NoError(t, db.Where("booking_reference = ?", reference).First(&appointment).Error)
	assert.Equal(t, user.ID, appointment.UserID)
}

func TestBookAppointmentRejectsPastDate(t *testing.T) {
	db := setupTestDB(t)
	app := newBookingApp()

	lastWeek := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	resp, _ := doJSON(t, app, "POST", "/appointment/book", bookingBody(lastWeek))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBookAppointmentValidation(t *testing.T) {
	setupTestDB(t)
	app := newBookingApp()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	tests := []struct {
		name   string
		mutate func(fiber.Map)
	}{
		{name: "missing name", mutate: func(m fiber.Map) { m["name"] = "" }},
		{name: "bad email", mutate: func(m fiber.Map) { m["email"] = "not-an-email" }},
		{name: "unknown service", mutate: func(m fiber.Map) { m["service"] = "ASTROLOGY" }},
		{name: "malformed date", mutate: func(m fiber.Map) { m["preferred_date"] = "31-12-2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := bookingBody(tomorrow)
			tt.mutate(body)

			resp, _ := doJSON(t, app, "POST", "/appointment/book", body)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}
