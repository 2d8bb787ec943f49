package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentOrder states
const (
	OrderStatusCreated   = "CREATED"
	OrderStatusPaid      = "PAID"
	OrderStatusFailed    = "FAILED"
	OrderStatusCancelled = "CANCELLED"
)

// PaymentOrder tracks a checkout attempt for a paid course.
// Gateway identifiers are opaque pass-through values; the signature is
// verified server-side before the order is marked PAID.
type PaymentOrder struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"index;not null"`
	CourseID         uint       `json:"course_id" gorm:"index;not null"`
	Receipt          string     `json:"receipt" gorm:"uniqueIndex"` // Internal receipt reference
	Gateway          string     `json:"gateway" gorm:"default:'razorpay'"`
	GatewayOrderID   string     `json:"gateway_order_id" gorm:"index"`
	GatewayPaymentID string     `json:"gateway_payment_id"`
	GatewaySignature string     `json:"-"`
	Amount           int64      `json:"amount"`                          // Minor currency units
	Currency         string     `json:"currency" gorm:"default:'INR'"`
	Status           string     `json:"status" gorm:"default:'CREATED'"` // CREATED, PAID, FAILED, CANCELLED
	PaidAt           *time.Time `json:"paid_at"`
	IsDeleted        bool       `gorm:"default:false"`
}
