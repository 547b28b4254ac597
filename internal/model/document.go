package model

// Document is the whole application dataset.  The store reads and writes
// it as a single unit; there are no partial updates.
type Document struct {
	Users       []User       `json:"users"`
	Courses     []Course     `json:"courses"`
	Enrollments []Enrollment `json:"enrollments"`
	Payments    []Payment    `json:"payments"`
}

// NewDocument returns an empty document with all collections allocated so
// the persisted form always serializes as arrays rather than null.
func NewDocument() *Document {
	return &Document{
		Users:       []User{},
		Courses:     []Course{},
		Enrollments: []Enrollment{},
		Payments:    []Payment{},
	}
}
