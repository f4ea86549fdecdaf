package model

import "time"

// Course is a catalog entry as stored in the `courses` table.  The struct
// doubles as the API response shape, so the json tags mirror the wire
// format served to the frontend.
type Course struct {
	ID          uint64    `json:"id"`          // courses.id
	Name        string    `json:"name"`        // courses.name
	Description string    `json:"description"` // courses.description
	Instructor  string    `json:"instructor"`  // courses.instructor
	CreatedAt   time.Time `json:"created_at"`  // courses.created_at
}
