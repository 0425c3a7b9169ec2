// Package models contains the persisted server-side entities.
package models

import "time"

// StatusActive is the only status assigned at registration time.
const StatusActive = "active"

// User is a registered account row. ID, CreatedAt and UpdatedAt are
// assigned by the database; PasswordHash is produced by cryptox and is
// never the plaintext password.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
