package services

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/dto"
)

// AuthSvcFacade defines authentication and session operations.
// A user has at most one active session: logging in deactivates the rest.
type AuthSvcFacade interface {
	// Login verifies credentials, invalidates prior sessions, opens a fresh one
	// and returns a signed access token carrying the session token.
	Login(ctx context.Context, req dto.LoginRequest, ipAddress string, userAgent string) (*dto.LoginResponse, error)

	// Logout deactivates the session.
	Logout(ctx context.Context, sessionID string) error

	// ValidateSession resolves a session token from an access token to the
	// active session, touching its activity timestamp.
	ValidateSession(ctx context.Context, sessionToken string) (*domain.Session, error)
}
