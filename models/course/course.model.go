package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course types
const (
	TypeStandalone = "STANDALONE"
	TypeWithMBA    = "WITH_MBA"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	Slug        string `json:"slug" gorm:"unique;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type" gorm:"default:'STANDALONE'"` // STANDALONE, WITH_MBA
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Module represents an ordered, index-addressed unit of course content.
// OrderIndex is the unit of progress tracking.
type Module struct {
	gorm.Model
	CourseID   uint           `json:"course_id" gorm:"index;not null"`
	OrderIndex int            `json:"order_index" gorm:"default:0"`
	Title      string         `json:"title"`
	VideoRefs  datatypes.JSON `json:"video_refs"` // array of video URLs
	DocRefs    datatypes.JSON `json:"doc_refs"`   // array of document URLs
	QuizRef    string         `json:"quiz_ref"`   // optional quiz reference
	IsDeleted  bool           `json:"-" gorm:"default:false"`
}

// LiveClass is a scheduled live session for a course.
type LiveClass struct {
	gorm.Model
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	Topic       string    `json:"topic"`
	StartsAt    time.Time `json:"starts_at"`
	MeetingLink string    `json:"meeting_link"`
	IsDeleted   bool      `json:"-" gorm:"default:false"`
}
