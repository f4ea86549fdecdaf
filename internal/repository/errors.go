// Package repository defines sentinel errors shared across repositories.
// Handlers branch on these values with errors.Is and translate them into
// HTTP responses, so database driver errors never leak to clients.
package repository

import "errors"

// ErrEmailExists is returned when an insert into users collides with the
// unique index on email. Handlers translate it into a conflict response.
var ErrEmailExists = errors.New("email already exists")

// ErrCourseNotFound is returned when a course id does not resolve to a row.
// Handlers translate it into an HTTP 404 response.
var ErrCourseNotFound = errors.New("course not found")
