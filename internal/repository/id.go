package repository

import "github.com/google/uuid"

// NewID returns a fresh identifier for any portal entity.  UUIDs replace
// the earlier short random strings, which were not collision-safe once
// the dataset grew.
func NewID() string {
	return uuid.NewString()
}
