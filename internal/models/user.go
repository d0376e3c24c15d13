package models

import "time"

// User mirrors the users table in the remote store.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
