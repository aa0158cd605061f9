// Package models defines persistence-level entities for the mail server.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and must never
// leave the service layer.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
