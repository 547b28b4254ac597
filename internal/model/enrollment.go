package model

import "time"

// Enrollment lifecycle states.
const (
	EnrollmentActive    = "Active"
	EnrollmentCompleted = "Completed"
	EnrollmentDropped   = "Dropped"
)

// Enrollment joins a user to a course.  At most one enrollment may exist
// per (UserID, CourseID) pair; the repository rejects duplicates before
// appending.  Progress is a percentage clamped to 0–100.
type Enrollment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	CourseID   string    `json:"courseId"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Status     string    `json:"status"`
	NextClass  string    `json:"nextClass,omitempty"`
}
