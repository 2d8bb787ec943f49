package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/middleware"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"
	"github.com/Abhishek-ak7/overseas-site-sub002/utils"

	"github.com/gofiber/fiber/v2"
)

// activeGateway is swapped in handler tests
var activeGateway = utils.ActiveGateway

// PurchaseCourse creates a payment order for a paid course and returns the
// checkout widget parameters. The stripe branch returns its discriminator
// without key material so the frontend shows its "coming soon" notice.
func PurchaseCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	if course.IsFree() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is free, enroll directly!", nil)
	}

	// Existing access means nothing to buy
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	gateway := activeGateway()
	receipt := utils.GenerateReceiptID()

	checkout, err := gateway.CreateOrder(course.Price, course.Currency, receipt)
	if err != nil {
		log.Printf("[PAYMENT] Order creation failed for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to create payment order!", nil)
	}

	order := models.PaymentOrder{
		UserID:         userID,
		CourseID:       uint(courseID),
		Receipt:        receipt,
		Gateway:        checkout.Gateway,
		GatewayOrderID: checkout.OrderID,
		Amount:         checkout.Amount,
		Currency:       checkout.Currency,
		Status:         models.OrderStatusCreated,
	}

	if err := database.Database.Db.Create(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment order created successfully!", fiber.Map{
		"order_id": order.ID,
		"receipt":  order.Receipt,
		"payment":  checkout,
		"prefill": fiber.Map{
			"name":    user.Name,
			"email":   user.Email,
			"contact": user.Mobile,
		},
	})
}

// VerifyPayment validates the gateway's opaque token triple and, on success,
// marks the order PAID and creates the enrollment in one transaction.
func VerifyPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedVerifyPayment").(*struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
		Signature string `json:"signature"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var order models.PaymentOrder
	if err := db.Where("gateway_order_id = ? AND user_id = ? AND course_id = ? AND is_deleted = ?", reqData.OrderID, userID, courseID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment order not found!", nil)
	}

	courseURL := fmt.Sprintf("%s/courses/%d/learn", config.AppConfig.SiteBaseURL, courseID)

	// Re-verification of a settled order succeeds without duplicating anything
	if order.Status == models.OrderStatusPaid {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already verified!", fiber.Map{
			"success":    true,
			"course_url": courseURL,
		})
	}

	if order.Status == models.OrderStatusCancelled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment order was cancelled!", nil)
	}

	if order.Gateway != "razorpay" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment gateway not supported yet!", nil)
	}

	gateway := activeGateway()
	if !gateway.VerifySignature(reqData.OrderID, reqData.PaymentID, reqData.Signature) {
		order.Status = models.OrderStatusFailed
		order.GatewayPaymentID = reqData.PaymentID
		db.Save(&order)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	now := time.Now()
	order.Status = models.OrderStatusPaid
	order.GatewayPaymentID = reqData.PaymentID
	order.GatewaySignature = reqData.Signature
	order.PaidAt = &now

	enrollment := courseModels.Enrollment{
		UserID:         userID,
		CourseID:       uint(courseID),
		Status:         "ENROLLED",
		PaymentOrderID: order.ID,
	}

	tx := db.Begin()
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment order!", nil)
	}
	// A retried callback may race enrollment creation; keep the existing row
	var existing courseModels.Enrollment
	if err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err != nil {
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
		}
	}
	tx.Commit()

	go utils.SendEnrollmentReceipt(user.Name, user.Email, course.Title, order.Receipt, order.Amount, order.Currency)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified successfully!", fiber.Map{
		"success":    true,
		"course_url": courseURL,
	})
}

// CancelPaymentOrder records a checkout dismissed before completion.
// Cancellation is not an error and never creates an enrollment.
func CancelPaymentOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	orderID := c.Locals("orderID").(int)

	db := database.Database.Db

	var order models.PaymentOrder
	if err := db.Where("id = ? AND user_id = ? AND course_id = ? AND is_deleted = ?", orderID, userID, courseID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment order not found!", nil)
	}

	if order.Status != models.OrderStatusCreated {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending orders can be cancelled!", nil)
	}

	order.Status = models.OrderStatusCancelled
	if err := db.Save(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel payment order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment order cancelled!", order)
}
