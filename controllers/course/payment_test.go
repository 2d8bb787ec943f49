package controllers

import (
	"testing"

	"github.com/Abhishek-ak7/overseas-site-sub002/models"
	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"
	"github.com/Abhishek-ak7/overseas-site-sub002/utils"
	validators "github.com/Abhishek-ak7/overseas-site-sub002/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeGateway stands in for the hosted checkout provider
type fakeGateway struct {
	name     string
	orderID  string
	validSig string
}

func (g *fakeGateway) Name() string { return g.name }

func (g *fakeGateway) CreateOrder(amount int64, currency, receipt string) (*utils.CheckoutOrder, error) {
	return &utils.CheckoutOrder{
		Gateway:  g.name,
		OrderID:  g.orderID,
		Amount:   amount,
		Currency: currency,
		KeyID:    "rzp_test_key",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == g.validSig
}

func useFakeGateway(t *testing.T, gw utils.PaymentGateway) {
	t.Helper()
	previous := activeGateway
	activeGateway = func() utils.PaymentGateway { return gw }
	t.Cleanup(func() { activeGateway = previous })
}

func newPaymentApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/course/:id/purchase", authAs(userID), validators.GetCourseDetail(), PurchaseCourse)
	app.Post("/course/:id/payment/verify", authAs(userID), validators.GetCourseDetail(), validators.VerifyPayment(), VerifyPayment)
	app.Post("/course/:id/order/:order_id/cancel", authAs(userID), validators.GetCourseDetail(), validators.OrderParam(), CancelPaymentOrder)
	return app
}

func TestPurchaseFreeCourseRejected(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 0)

	app := newPaymentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/purchase", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.PaymentOrder{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPurchaseCreatesPendingOrder(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	useFakeGateway(t, &fakeGateway{name: "razorpay", orderID: "order_test123"})

	app := newPaymentApp(user.ID)

	resp, payload := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/purchase", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var order models.PaymentOrder
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&order).Error)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, "order_test123", order.GatewayOrderID)
	assert.Equal(t, int64(499900), order.Amount)

	data := payload["data"].(map[string]interface{})
	payment := data["payment"].(map[string]interface{})
	assert.Equal(t, "razorpay", payment["gateway"])
	assert.Equal(t, "rzp_test_key", payment["key_id"])
}

func TestPurchaseAlreadyEnrolled(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)
	useFakeGateway(t, &fakeGateway{name: "razorpay", orderID: "order_dup"})

	app := newPaymentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/purchase", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func seedPaymentOrder(t *testing.T, db *gorm.DB, userID, courseID uint, gateway, status string) models.PaymentOrder {
	t.Helper()

	order := models.PaymentOrder{
		UserID:         userID,
		CourseID:       courseID,
		Receipt:        "rcpt_" + status,
		Gateway:        gateway,
		GatewayOrderID: "order_" + status,
		Amount:         499900,
		Currency:       "INR",
		Status:         status,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	order := seedPaymentOrder(t, db, user.ID, course.ID, "razorpay", models.OrderStatusCreated)
	useFakeGateway(t, &fakeGateway{name: "razorpay", validSig: "good-signature"})

	app := newPaymentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/payment/verify", fiber.Map{
		"order_id":   order.GatewayOrderID,
		"payment_id": "pay_123",
		"signature":  "tampered",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusFailed, order.Status)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.Equal(t, int64(0), enrollments)
}

func TestVerifyPaymentSuccessIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	order := seedPaymentOrder(t, db, user.ID, course.ID, "razorpay", models.OrderStatusCreated)
	useFakeGateway(t, &fakeGateway{name: "razorpay", validSig: "good-signature"})

	app := newPaymentApp(user.ID)
	body := fiber.Map{
		"order_id":   order.GatewayOrderID,
		"payment_id": "pay_123",
		"signature":  "good-signature",
	}

	resp, payload := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/payment/verify", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["success"])
	assert.Contains(t, data["course_url"], "/learn")

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.NotNil(t, order.PaidAt)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, order.ID, enrollment.PaymentOrderID)

	// Re-verifying a settled order succeeds without another enrollment
	resp, _ = doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/payment/verify", body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)
}

func TestPurchaseWithStripeStub(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	useFakeGateway(t, &utils.StripeGateway{})

	app := newPaymentApp(user.ID)

	resp, payload := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/purchase", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The frontend gets the gateway discriminator but no checkout key material
	data := payload["data"].(map[string]interface{})
	payment := data["payment"].(map[string]interface{})
	assert.Equal(t, "stripe", payment["gateway"])
	assert.NotContains(t, payment, "key_id")
	assert.Equal(t, "", payment["order_id"])

	var order models.PaymentOrder
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&order).Error)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, "stripe", order.Gateway)
	assert.Equal(t, "", order.GatewayOrderID)
}

func TestVerifyPaymentUnsupportedGateway(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	order := seedPaymentOrder(t, db, user.ID, course.ID, "stripe", models.OrderStatusCreated)
	useFakeGateway(t, &fakeGateway{name: "stripe"})

	app := newPaymentApp(user.ID)

	resp, payload := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/payment/verify", fiber.Map{
		"order_id":   order.GatewayOrderID,
		"payment_id": "pay_123",
		"signature":  "anything",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Payment gateway not supported yet!", payload["message"])
}

func TestVerifyPaymentCancelledOrder(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	order := seedPaymentOrder(t, db, user.ID, course.ID, "razorpay", models.OrderStatusCancelled)
	useFakeGateway(t, &fakeGateway{name: "razorpay", validSig: "good-signature"})

	app := newPaymentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/payment/verify", fiber.Map{
		"order_id":   order.GatewayOrderID,
		"payment_id": "pay_123",
		"signature":  "good-signature",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCancelPaymentOrder(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	order := seedPaymentOrder(t, db, user.ID, course.ID, "razorpay", models.OrderStatusCreated)

	app := newPaymentApp(user.ID)
	target := "/course/" + itoa(course.ID) + "/order/" + itoa(order.ID) + "/cancel"

	resp, _ := doJSON(t, app, "POST", target, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).Count(&enrollments)
	assert.Equal(t, int64(0), enrollments)

	// Cancelling twice is rejected
	resp, _ = doJSON(t, app, "POST", target, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCancelPaidOrderRejected(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, 499900)
	order := seedPaymentOrder(t, db, user.ID, course.ID, "razorpay", models.OrderStatusPaid)

	app := newPaymentApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/course/"+itoa(course.ID)+"/order/"+itoa(order.ID)+"/cancel", nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
