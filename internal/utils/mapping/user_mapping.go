package mapping

import (
	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		Email:          d.Email,
		HashedPassword: d.HashedPassword,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// ToModelSession converts a domain Session to a model Session
func ToModelSession(d domain.Session) models.Session {
	return models.Session{
		SessionID:    d.SessionID,
		UserID:       d.UserID,
		SessionToken: d.SessionToken,
		IPAddress:    d.IPAddress,
		UserAgent:    d.UserAgent,
		IsActive:     d.IsActive,
		LastActivity: d.LastActivity,
		CreatedAt:    d.CreatedAt,
		ExpiresAt:    d.ExpiresAt,
	}
}

// ToDomainSession converts a model Session to a domain Session
func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID:    m.SessionID,
		UserID:       m.UserID,
		SessionToken: m.SessionToken,
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		IsActive:     m.IsActive,
		LastActivity: m.LastActivity,
		CreatedAt:    m.CreatedAt,
		ExpiresAt:    m.ExpiresAt,
	}
}
