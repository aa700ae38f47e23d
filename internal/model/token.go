package model

import "time"

// TokenTypeBearer is the only token type the service issues.
const TokenTypeBearer = "bearer"

// TokenManager signs and parses access tokens.
type TokenManager interface {
	Generate(subject string) (token string, expiresAt time.Time, err error)
	// Parse returns the subject of a valid token, ErrTokenExpired or ErrTokenMalformed.
	Parse(token string) (subject string, err error)
}

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
