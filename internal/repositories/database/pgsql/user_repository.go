package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	"github.com/finassoc/association_finance_app/internal/models"
	"github.com/finassoc/association_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, email, hashed_password, created_at`
const sessionColumns = `session_id, user_id, session_token, ip_address, user_agent, is_active, last_activity, created_at, expires_at`

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user and session data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.HashedPassword,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.HashedPassword,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by its ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// FindUserByUsername retrieves a user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}

	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// SaveSession inserts a new session.
func (r *PgxUserRepository) SaveSession(ctx context.Context, session domain.Session) error {
	m := mapping.ToModelSession(session)

	query := `
		INSERT INTO user_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SessionID,
		m.UserID,
		m.SessionToken,
		m.IPAddress,
		m.UserAgent,
		m.IsActive,
		m.LastActivity,
		m.CreatedAt,
		m.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", m.SessionID, err)
	}
	return nil
}

// FindActiveSessionByToken retrieves the active, unexpired session for a token.
func (r *PgxUserRepository) FindActiveSessionByToken(ctx context.Context, sessionToken string) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM user_sessions
		WHERE session_token = $1 AND is_active = TRUE AND expires_at > NOW();
	`
	var m models.Session
	err := r.Pool.QueryRow(ctx, query, sessionToken).Scan(
		&m.SessionID,
		&m.UserID,
		&m.SessionToken,
		&m.IPAddress,
		&m.UserAgent,
		&m.IsActive,
		&m.LastActivity,
		&m.CreatedAt,
		&m.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}

	s := mapping.ToDomainSession(m)
	return &s, nil
}

// InvalidateActiveSessionsForUser deactivates every active session of a user.
func (r *PgxUserRepository) InvalidateActiveSessionsForUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	query := `
		UPDATE user_sessions
		SET is_active = FALSE, last_activity = $2
		WHERE user_id = $1 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate sessions for user %s: %w", userID, err)
	}
	return cmdTag.RowsAffected(), nil
}

// InvalidateSession deactivates a single session.
func (r *PgxUserRepository) InvalidateSession(ctx context.Context, sessionID string, now time.Time) error {
	query := `
		UPDATE user_sessions
		SET is_active = FALSE, last_activity = $2
		WHERE session_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, sessionID, now)
	if err != nil {
		return fmt.Errorf("failed to invalidate session %s: %w", sessionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// TouchSession records activity on a session.
func (r *PgxUserRepository) TouchSession(ctx context.Context, sessionID string, now time.Time) error {
	query := `
		UPDATE user_sessions
		SET last_activity = $2
		WHERE session_id = $1 AND is_active = TRUE;
	`
	if _, err := r.Pool.Exec(ctx, query, sessionID, now); err != nil {
		return fmt.Errorf("failed to touch session %s: %w", sessionID, err)
	}
	return nil
}
