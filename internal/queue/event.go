// Package queue defines the message payloads exchanged over the broker and
// the background consumer that turns them into an audit trail.
package queue

// CourseCreatedEvent is published whenever a course lands in the catalog,
// whether through a single create or a bulk upload.  It carries enough to
// audit who added what without a round trip to the database.
type CourseCreatedEvent struct {
    CourseID   uint64 `json:"course_id"`
    Name       string `json:"name"`
    Instructor string `json:"instructor"`
    ActorID    uint64 `json:"actor_id"`    // account id of the authenticated creator
    ActorEmail string `json:"actor_email"` // email claim of the creator
    CreatedAt  string `json:"created_at"`  // RFC3339 UTC
}
