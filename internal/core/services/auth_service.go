package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/finassoc/association_finance_app/internal/middleware"
	"github.com/finassoc/association_finance_app/internal/platform/config"
	"github.com/finassoc/association_finance_app/internal/utils"
)

const sessionTokenBytes = 32

// authService implements credential verification and session management.
// A user holds at most one active session: each login deactivates the rest,
// so a stolen or stale token dies the moment its owner logs in again.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials, invalidates prior sessions, opens a fresh one
// and returns a signed access token carrying the session token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest, ipAddress string, userAgent string) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response as a bad password so usernames cannot be probed.
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to find user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		logger.Warn("Login attempt with wrong password", slog.String("username", req.Username), slog.String("ip", ipAddress))
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	now := time.Now().UTC()
	invalidated, err := s.userRepo.InvalidateActiveSessionsForUser(ctx, user.UserID, now)
	if err != nil {
		logger.Error("Failed to invalidate prior sessions", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to invalidate prior sessions: %w", err)
	}

	sessionToken, err := utils.GenerateSecureToken(sessionTokenBytes)
	if err != nil {
		logger.Error("Failed to generate session token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := domain.Session{
		SessionID:    uuid.NewString(),
		UserID:       user.UserID,
		SessionToken: sessionToken,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		IsActive:     true,
		LastActivity: now,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.cfg.SessionExpiryDuration),
	}
	if err := s.userRepo.SaveSession(ctx, session); err != nil {
		logger.Error("Failed to save session", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	accessToken, err := utils.CreateAccessToken(user.UserID, sessionToken, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	logger.Info("User logged in",
		slog.String("user_id", user.UserID),
		slog.String("ip", ipAddress),
		slog.Int64("sessions_invalidated", invalidated),
	)
	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   now.Add(s.cfg.JWTExpiryDuration),
		User:        dto.ToUserResponse(user),
	}, nil
}

// Logout deactivates the session.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userRepo.InvalidateSession(ctx, sessionID, time.Now().UTC()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to invalidate session", slog.String("error", err.Error()), slog.String("session_id", sessionID))
		}
		return err
	}

	logger.Info("User logged out", slog.String("session_id", sessionID))
	return nil
}

// ValidateSession resolves a session token to the active session it belongs
// to, touching its activity timestamp. Inactive and expired sessions resolve
// to ErrUnauthorized.
func (s *authService) ValidateSession(ctx context.Context, sessionToken string) (*domain.Session, error) {
	session, err := s.userRepo.FindActiveSessionByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: session not active", apperrors.ErrUnauthorized)
		}
		middleware.GetLoggerFromCtx(ctx).Error("Failed to look up session", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	// Activity tracking is best-effort; a failed touch never blocks the request.
	if err := s.userRepo.TouchSession(ctx, session.SessionID, time.Now().UTC()); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to touch session", slog.String("error", err.Error()), slog.String("session_id", session.SessionID))
	}

	return session, nil
}
