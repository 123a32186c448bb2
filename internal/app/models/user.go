package models

import "time"

// User defines the user model based on the 'users' table. A user is created
// once at account creation and identified by their enrollment number.
type User struct {
	ID               int64     `json:"id" db:"id"`
	EnrollmentNumber string    `json:"enrollment_number" db:"enrollment_number"` // Primary identity key
	PhoneNumber      string    `json:"phone_number" db:"phone_number"`           // Normalized 10-digit subscriber number
	Password         string    `json:"-" db:"hashed_password"`                   // Hashed password (excluded from JSON)
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
