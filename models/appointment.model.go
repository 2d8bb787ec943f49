package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment states
const (
	AppointmentPending   = "PENDING"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment is a consultation booking made from the public site.
// UserID is zero for guest bookings.
type Appointment struct {
	gorm.Model
	UserID             uint      `json:"user_id" gorm:"index"`
	BookingReference   string    `json:"booking_reference" gorm:"uniqueIndex"`
	Name               string    `json:"name"`
	Email              string    `json:"email" gorm:"index"`
	Mobile             string    `json:"mobile"`
	DestinationCountry string    `json:"destination_country"`
	Service            string    `json:"service"` // COUNSELLING, VISA, TEST_PREP, ADMISSION
	Message            string    `json:"message" gorm:"type:text"`
	PreferredDate      time.Time `json:"preferred_date"`
	PreferredSlot      string    `json:"preferred_slot"` // e.g. 10:00-10:30
	Status             string    `json:"status" gorm:"default:'PENDING'"` // PENDING, CONFIRMED, COMPLETED, CANCELLED
	ReminderSent       bool      `json:"reminder_sent" gorm:"default:false"`
	IsDeleted          bool      `gorm:"default:false"`
}

// AppointmentRequest is the public booking form payload
type AppointmentRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=100"`
	Email              string `json:"email" validate:"required,email"`
	Mobile             string `json:"mobile" validate:"required,min=8,max=15"`
	DestinationCountry string `json:"destination_country" validate:"required,max=60"`
	Service            string `json:"service" validate:"required,oneof=COUNSELLING VISA TEST_PREP ADMISSION"`
	Message            string `json:"message" validate:"max=2000"`
	PreferredDate      string `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredSlot      string `json:"preferred_slot" validate:"required,max=20"`
}
