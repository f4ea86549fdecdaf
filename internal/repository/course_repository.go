// This file defines the repository methods for the course resource: create,
// batch create, list, lookup, update and delete.  Handlers never touch
// *sql.DB directly; everything goes through this layer so errors can be
// normalized to the package sentinels.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/course-catalog/internal/model"
)

// CourseRepo encapsulates all queries against the `courses` table.
type CourseRepo struct {
	db *sql.DB
}

// NewCourseRepo constructs a CourseRepo with the provided DB handle, which
// allows injecting a mock database in tests.
func NewCourseRepo(db *sql.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// Create inserts a new course.  On success the ID and CreatedAt fields of c
// are populated from the stored row so callers return a complete record.
func (r *CourseRepo) Create(ctx context.Context, c *model.Course) error {
	const qInsert = "INSERT INTO courses (name, description, instructor) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, c.Name, c.Description, c.Instructor)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	// Follow-up SELECT to populate the DB-assigned created_at.
	const qSelect = "SELECT created_at FROM courses WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, c.ID).Scan(&c.CreatedAt)
}

// CreateBatch inserts all courses inside one transaction, so a bulk upload
// either lands completely or not at all.  IDs are populated on success.
func (r *CourseRepo) CreateBatch(ctx context.Context, courses []model.Course) ([]model.Course, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const q = "INSERT INTO courses (name, description, instructor) VALUES (?, ?, ?)"
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		res, err := tx.ExecContext(ctx, q, c.Name, c.Description, c.Instructor)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		c.ID = uint64(id)
		out = append(out, c)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every course in the catalog, newest first.
func (r *CourseRepo) List(ctx context.Context) ([]model.Course, error) {
	const q = "SELECT id, name, description, instructor, created_at FROM courses ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Instructor, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// GetByID fetches a course by id, returning ErrCourseNotFound when no row
// matches.
func (r *CourseRepo) GetByID(ctx context.Context, id uint64) (*model.Course, error) {
	const q = "SELECT id, name, description, instructor, created_at FROM courses WHERE id = ?"
	var c model.Course
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Description, &c.Instructor, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update rewrites the mutable fields of a course.  ErrCourseNotFound is
// returned when the id does not exist.
func (r *CourseRepo) Update(ctx context.Context, id uint64, name, description, instructor string) error {
	const q = "UPDATE courses SET name = ?, description = ?, instructor = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, name, description, instructor, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the row is gone or the values were already identical.
		// Disambiguate with a cheap existence check.
		var one int
		if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM courses WHERE id = ?", id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCourseNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a course by id, returning ErrCourseNotFound when nothing
// was deleted.
func (r *CourseRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCourseNotFound
	}
	return nil
}
