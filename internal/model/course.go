package model

import "time"

// Course difficulty levels accepted by the catalog.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course publication status.
const (
	CourseActive   = "Active"
	CourseInactive = "Inactive"
)

// Course is a catalog entry.  Students is a denormalized count of
// enrollments referencing the course; it is incremented in the same
// document write that records a new enrollment so the two cannot drift
// within a single process.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Instructor  string    `json:"instructor"`
	Credits     int       `json:"credits"`
	Price       float64   `json:"price"`
	Level       string    `json:"level"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Students    int       `json:"students"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
