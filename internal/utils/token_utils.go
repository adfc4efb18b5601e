package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims carried by access tokens. The embedded
// session token ties the JWT to a revocable server-side session row.
type SessionClaims struct {
	SessionToken string `json:"session_token"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs a JWT for the given user and session token.
func CreateAccessToken(userID, sessionToken, secret, issuer string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionToken: sessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates the signature and expiry of an access token and
// returns its claims.
func ParseAccessToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Subject == "" || claims.SessionToken == "" {
		return nil, errors.New("token missing subject or session")
	}
	return claims, nil
}
