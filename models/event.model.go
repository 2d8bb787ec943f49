package models

import (
	"time"

	"gorm.io/gorm"
)

// Event represents an education fair, webinar or university visit
type Event struct {
	gorm.Model
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:text"`
	Mode        string    `json:"mode" gorm:"default:'OFFLINE'"` // ONLINE, OFFLINE, HYBRID
	Location    string    `json:"location"`
	BannerURL   string    `json:"banner_url"`
	StartsAt    time.Time `json:"starts_at" gorm:"index"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `json:"capacity" gorm:"default:0"` // 0 means unlimited
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	IsDeleted   bool      `gorm:"default:false"`
}

// EventRegistration tracks a user's registration for an event
type EventRegistration struct {
	gorm.Model
	EventID   uint   `json:"event_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'REGISTERED'"` // REGISTERED, ATTENDED, CANCELLED
	IsDeleted bool   `gorm:"default:false"`
}
