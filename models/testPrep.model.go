package models

import (
	"gorm.io/gorm"

	"gorm.io/datatypes"
)

// TestPrep represents a standardized-test preparation offering (IELTS, TOEFL, PTE...)
type TestPrep struct {
	gorm.Model
	Name        string         `json:"name"`
	Slug        string         `json:"slug" gorm:"uniqueIndex"`
	Description string         `json:"description" gorm:"type:text"`
	Duration    int            `json:"duration" gorm:"default:0"` // duration in weeks
	Fee         int64          `json:"fee" gorm:"default:0"`      // Minor currency units
	Currency    string         `json:"currency" gorm:"default:'INR'"`
	Features    datatypes.JSON `json:"features"` // List of bullet points shown on the site
	IsPublished bool           `json:"is_published" gorm:"default:false"`
	IsDeleted   bool           `gorm:"default:false"`
}
