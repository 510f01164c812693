package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment statuses, derived lazily from ValidUntil at read time.
const (
	StatusActive  = "ACTIVE"
	StatusExpired = "EXPIRED"
)

// Enrollment tracks a student's enrollment in a course. One row per
// (student, course) pair; the handler layer rejects duplicates because
// progress would otherwise split across rows.
type Enrollment struct {
	gorm.Model
	StudentID  uint      `json:"student_id" gorm:"index;not null"`
	CourseID   uint      `json:"course_id" gorm:"index;not null"`
	EnrollDate time.Time `json:"enroll_date"`
	ValidUntil time.Time `json:"valid_until"`
	IsDeleted  bool      `json:"-" gorm:"default:false"`
}

// Status computes the lifecycle state from ValidUntil. There is no
// background sweep, expiry is evaluated wherever the row is read.
func (e *Enrollment) Status() string {
	if time.Now().After(e.ValidUntil) {
		return StatusExpired
	}
	return StatusActive
}

// ModuleCompletion is one element of an enrollment's completed-module
// set. The composite unique index gives set semantics at the storage
// layer: re-marking the same module is an insert conflict, not a
// duplicate row.
type ModuleCompletion struct {
	gorm.Model
	EnrollmentID uint `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_module"`
	ModuleIndex  int  `json:"module_index" gorm:"not null;uniqueIndex:idx_enrollment_module"`
}

// QuizAttempt is an append-only attempt record. Rows are never updated
// or deleted, the history is the data.
type QuizAttempt struct {
	gorm.Model
	EnrollmentID uint           `json:"enrollment_id" gorm:"index;not null"`
	ModuleIndex  int            `json:"module_index" gorm:"not null"`
	Score        int            `json:"score"` // 0-100
	Answers      datatypes.JSON `json:"answers"`
}
