package service

import (
	"context"
	"fmt"

	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
)

// TokenService issues and verifies bearer tokens. It composes the TokenManager
// and never touches a store.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(ctx context.Context, subject string) (model.Token, error) {
	access, expiresAt, err := s.manager.Generate(subject)
	if err != nil {
		s.logger.Error("Token service: failed to generate token",
			"subject", subject,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("issue access: %w", err)
	}

	return model.Token{
		AccessToken: access,
		TokenType:   model.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify returns the subject of token. Failures are model.ErrTokenExpired or
// model.ErrTokenMalformed.
func (s *TokenService) Verify(ctx context.Context, token string) (string, error) {
	subject, err := s.manager.Parse(token)
	if err != nil {
		s.logger.Debug("Token service: token rejected",
			"error", err.Error())
		return "", err
	}

	return subject, nil
}
