package models

import (
	"gorm.io/gorm"

	"gorm.io/datatypes"
)

// Page is a CMS-managed page; Sections carries ordered content blocks
// (hero, marketing strips) as raw JSON rendered by the frontend.
type Page struct {
	gorm.Model
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string         `json:"title"`
	Sections    datatypes.JSON `json:"sections"`
	IsPublished bool           `json:"is_published" gorm:"default:false"`
	IsDeleted   bool           `gorm:"default:false"`
}

// Partner is a partner university or institution shown on the site
type Partner struct {
	gorm.Model
	Name       string `json:"name"`
	Country    string `json:"country"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// Testimonial is a student success story
type Testimonial struct {
	gorm.Model
	Author      string `json:"author"`
	University  string `json:"university"`
	Country     string `json:"country"`
	Quote       string `json:"quote" gorm:"type:text"`
	PhotoURL    string `json:"photo_url"`
	Rating      uint   `json:"rating" gorm:"default:5"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Statistic is a headline number ("5000+ students placed")
type Statistic struct {
	gorm.Model
	Label      string `json:"label"`
	Value      int64  `json:"value"`
	Suffix     string `json:"suffix"` // e.g. "+", "%"
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// JourneyStep is one step of the "your journey with us" section
type JourneyStep struct {
	gorm.Model
	StepNumber  int    `json:"step_number" gorm:"default:0"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon"`
	IsDeleted   bool   `gorm:"default:false"`
}
