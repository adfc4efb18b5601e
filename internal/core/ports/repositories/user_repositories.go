package repositories

import (
	"context"
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// SessionReader defines read operations for session data
type SessionReader interface {
	// FindActiveSessionByToken retrieves the active, unexpired session carrying
	// the given opaque session token.
	FindActiveSessionByToken(ctx context.Context, sessionToken string) (*domain.Session, error)
}

// SessionWriter defines write operations for session data
type SessionWriter interface {
	// SaveSession persists a new session.
	SaveSession(ctx context.Context, session domain.Session) error

	// InvalidateActiveSessionsForUser deactivates every active session belonging
	// to the user, returning the number of sessions deactivated.
	InvalidateActiveSessionsForUser(ctx context.Context, userID string, now time.Time) (int64, error)

	// InvalidateSession deactivates a single session.
	InvalidateSession(ctx context.Context, sessionID string, now time.Time) error

	// TouchSession records activity on a session.
	TouchSession(ctx context.Context, sessionID string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	SessionReader
	SessionWriter
}
