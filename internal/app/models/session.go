package models

import "time"

// SessionData is the attribute bag persisted per session. It is a fixed
// struct rather than an open-ended map; the JSON encoding stays compatible
// with a {"enrollment_number": ...} dictionary on the wire.
type SessionData struct {
	EnrollmentNumber string `json:"enrollment_number,omitempty"`
}

// IsEmpty reports whether the bag carries no attributes. An empty bag after a
// request means the session should be deleted.
func (d SessionData) IsEmpty() bool {
	return d == SessionData{}
}

// Session defines the session model based on the 'sessions' table.
type Session struct {
	Key     string      `json:"session_key" db:"session_key"` // Opaque server-generated token
	Data    SessionData `json:"data" db:"data"`
	Expires time.Time   `json:"expires" db:"expires"`
}
