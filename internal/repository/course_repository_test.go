package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/course-catalog/internal/model"
)

func TestCourseRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectExec("INSERT INTO courses").
		WithArgs("Go 101", "Introduction to Go", "R. Pike").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT created_at FROM courses WHERE id =").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	repo := NewCourseRepo(db)
	c := &model.Course{Name: "Go 101", Description: "Introduction to Go", Instructor: "R. Pike"}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if c.ID != 5 {
		t.Fatalf("Create() id = %d, want 5", c.ID)
	}
	if !c.CreatedAt.Equal(now) {
		t.Fatalf("Create() created_at = %v, want %v", c.CreatedAt, now)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCourseRepoCreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO courses").
		WithArgs("A", "First course", "X Y").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO courses").
		WithArgs("B", "Second course", "X Y").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	repo := NewCourseRepo(db)
	out, err := repo.CreateBatch(context.Background(), []model.Course{
		{Name: "A", Description: "First course", Instructor: "X Y"},
		{Name: "B", Description: "Second course", Instructor: "X Y"},
	})
	if err != nil {
		t.Fatalf("CreateBatch() error: %v", err)
	}
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("unexpected batch result: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCourseRepoCreateBatchRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO courses").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO courses").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	repo := NewCourseRepo(db)
	_, err = repo.CreateBatch(context.Background(), []model.Course{
		{Name: "A", Description: "First course", Instructor: "X Y"},
		{Name: "B", Description: "Second course", Instructor: "X Y"},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCourseRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, description, instructor, created_at FROM courses WHERE id =").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "instructor", "created_at"}))

	repo := NewCourseRepo(db)
	_, err = repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "instructor", "created_at"}).
		AddRow(2, "B", "Second course", "X", now).
		AddRow(1, "A", "First course", "Y", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, name, description, instructor, created_at FROM courses ORDER BY").
		WillReturnRows(rows)

	repo := NewCourseRepo(db)
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(items) != 2 || items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("unexpected list: %+v", items)
	}
}

func TestCourseRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM courses WHERE id =").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCourseRepo(db)
	if err := repo.Delete(context.Background(), 42); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseRepoUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE courses SET name =").
		WithArgs("New", "New description", "Someone", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCourseRepo(db)
	if err := repo.Update(context.Background(), 7, "New", "New description", "Someone"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
