package models

import "time"

// User is a registered identity. Email is stored normalized (trimmed,
// lowercased) and is unique across all users.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
