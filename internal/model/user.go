package model

import "time"

// Role values stored in users.role and carried inside session tokens.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents an account record in the portal document.  The json tags
// mirror the wire shape the frontend already consumes, so a User can be
// stored and served without a separate persisted form.  Password holds a
// bcrypt hash, never the plain credential.
//
// Fields:
//  ID        – opaque unique identifier.
//  Email     – unique login email, stored case-sensitively.
//  Password  – bcrypt hash of the credential.
//  FullName  – display name.
//  Role      – "student" or "admin".
//  StudentID – institutional student number (students only).
//  Program   – enrolled program name (optional).
//  Year      – year of study (optional).
//  CreatedAt – timestamp of registration.
//  UpdatedAt – timestamp of last change.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	StudentID string    `json:"studentId,omitempty"`
	Program   string    `json:"program,omitempty"`
	Year      string    `json:"year,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
