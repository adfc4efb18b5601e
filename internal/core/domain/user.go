package domain

import "time"

// User is an operator of the system. The engine only uses users for
// attribution on movements; authorization is the session layer's concern.
type User struct {
	UserID         string    `json:"userID"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session is a server-side login session. Access tokens embed the session
// token; a token is only honored while its session row is active and
// unexpired. Logging in invalidates the user's other active sessions.
type Session struct {
	SessionID    string    `json:"sessionID"`
	UserID       string    `json:"userID"`
	SessionToken string    `json:"-"`
	IPAddress    string    `json:"ipAddress"`
	UserAgent    string    `json:"userAgent,omitempty"`
	IsActive     bool      `json:"isActive"`
	LastActivity time.Time `json:"lastActivity"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
