package model

import "time"

// User represents an account record as stored in the `users` table.  The
// email is the lookup key for login and carries a unique index; at most one
// account exists per address.  Only the bcrypt hash of the password is ever
// persisted.  Accounts are created on registration and never mutated by the
// application afterwards.
//
// Fields:
//
//	ID           – primary key identifier of the account.
//	Name         – display name supplied at registration.
//	Email        – unique, normalized email address.
//	PasswordHash – bcrypt digest of the password.
//	CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
