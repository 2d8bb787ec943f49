package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson represents a single lesson within a module
type Lesson struct {
	gorm.Model
	CourseID    uint           `json:"course_id" gorm:"index;not null"`
	ModuleID    uint           `json:"module_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	LessonType  string         `json:"lesson_type" gorm:"default:'TEXT'"` // TEXT, VIDEO
	Duration    int            `json:"duration" gorm:"default:0"`         // duration in minutes
	IsFree      bool           `json:"is_free" gorm:"default:false"`      // Free preview lesson
	TextContent string         `json:"text_content" gorm:"type:text"`
	VideoURL    string         `json:"video_url"`
	Resources   datatypes.JSON `json:"resources"` // Downloadable attachments, links
	OrderIndex  int            `json:"order_index" gorm:"default:0"`
	IsPublished bool           `json:"is_published" gorm:"default:false"`
	IsDeleted   bool           `gorm:"default:false"`
}

// LessonProgress tracks a user's progress within a single lesson.
// The latest reported percentage always wins; completion pins it at 100.
type LessonProgress struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"index;not null"`
	CourseID           uint       `json:"course_id" gorm:"index;not null"`
	LessonID           uint       `json:"lesson_id" gorm:"index;not null"`
	ProgressPercentage int        `json:"progress_percentage" gorm:"default:0"` // 0-100
	TimeSpent          int        `json:"time_spent" gorm:"default:0"`          // seconds
	IsCompleted        bool       `json:"is_completed" gorm:"default:false"`
	LastAccessedAt     *time.Time `json:"last_accessed_at"`
	IsDeleted          bool       `gorm:"default:false"`
}
