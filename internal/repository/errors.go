// Package repository layers typed accessors over the document store so
// handlers never touch the raw document shape.  Sentinel errors defined
// here let higher layers distinguish failure scenarios: a lookup that
// found nothing, a uniqueness conflict, or the store itself being
// unreachable (which wraps store.ErrUnavailable and is not defined here).
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no record.  Handlers
// should translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registration would duplicate an email.
// Handlers should translate it into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyEnrolled is returned when a user already holds an enrollment
// for the requested course.  Handlers should translate it into an HTTP
// 409 response.
var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

// ErrConflict is returned when an update cannot proceed because of the
// record's current state, such as confirming a payment that is already
// settled.
var ErrConflict = errors.New("conflict")
