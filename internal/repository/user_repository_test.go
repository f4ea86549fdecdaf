package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("Ann Lee", "ann@example.com", "digest").
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := NewUserRepo(db)
	id, err := repo.Create(context.Background(), "Ann Lee", "Ann@Example.com ", "digest")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if id != 3 {
		t.Fatalf("Create() id = %d, want 3", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserRepoCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'ann@example.com' for key 'uq_users_email'"))

	repo := NewUserRepo(db)
	_, err = repo.Create(context.Background(), "Ann Lee", "ann@example.com", "digest")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserRepoGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow(3, "Ann Lee", "ann@example.com", "digest", now)
	mock.ExpectQuery("SELECT id,name,email,password_hash,created_at FROM users WHERE email=").
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	repo := NewUserRepo(db)
	u, err := repo.GetByEmail(context.Background(), " ANN@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error: %v", err)
	}
	if u.ID != 3 || u.Email != "ann@example.com" || u.PasswordHash != "digest" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserRepoGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id,name,email,password_hash,created_at FROM users WHERE email=").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	repo := NewUserRepo(db)
	_, err = repo.GetByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
