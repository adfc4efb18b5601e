package models

import "time"

// User mirrors a row of the users table.
type User struct {
	UserID         string    `db:"user_id"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
}

// Session mirrors a row of the user_sessions table.
type Session struct {
	SessionID    string    `db:"session_id"`
	UserID       string    `db:"user_id"`
	SessionToken string    `db:"session_token"`
	IPAddress    string    `db:"ip_address"`
	UserAgent    string    `db:"user_agent"`
	IsActive     bool      `db:"is_active"`
	LastActivity time.Time `db:"last_activity"`
	CreatedAt    time.Time `db:"created_at"`
	ExpiresAt    time.Time `db:"expires_at"`
}
