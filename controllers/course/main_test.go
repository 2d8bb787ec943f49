package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the global database for an isolated in-memory sqlite
// instance named after the test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PaymentOrder{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.LessonProgress{},
		&courseModels.Enrollment{},
	))

	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		Port:           "3000",
		JWTKey:         "test-secret",
		JWTExpiryHours: 24,
		SiteBaseURL:    "http://localhost:3000",
		PaymentGateway: "razorpay",
	}

	return db
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// authAs injects an authenticated user the way the JWT middleware does
func authAs(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	return doJSONAs(t, app, method, target, "", body)
}

// doJSONAs sends a request with a bearer token when one is given
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

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Role:     "USER",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, price int64) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:       "IELTS Crash Course",
		Author:      "Overseas Faculty",
		Level:       "BEGINNER",
		Price:       price,
		Currency:    "INR",
		Status:      "ACTIVE",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedLesson(t *testing.T, db *gorm.DB, courseID, moduleID uint, orderIndex int) courseModels.Lesson {
	t.Helper()

	lesson := courseModels.Lesson{
		CourseID:    courseID,
		ModuleID:    moduleID,
		Title:       fmt.Sprintf("Lesson %d", orderIndex),
		LessonType:  "TEXT",
		TextContent: "Reading strategies",
		OrderIndex:  orderIndex,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return lesson
}
