package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, logger),
		logger:       logger,
	}
}

// Login checks the credentials and issues an access token for the user.
func (a *Auth) Login(ctx context.Context, username, password string) (model.Token, error) {
	a.logger.Debug("Auth service: login attempt",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.Token{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	// Unknown users still pay for a hash comparison.
	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		if !errors.Is(err, model.ErrInvalidCredentials) {
			a.logger.Error("Auth service: failed to compare password",
				"username", username,
				"error", err.Error())
			return model.Token{}, fmt.Errorf("failed to compare password: %w", err)
		}
		a.logger.Info("Auth service: invalid credentials",
			"username", username)
		return model.Token{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, model.ErrInvalidCredentials)
	}

	token, err := a.tokenService.Issue(ctx, user.Username)
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", username,
		"user_id", user.ID)

	return token, nil
}

// Authenticate resolves token to a known user.
func (a *Auth) Authenticate(ctx context.Context, token string) (model.User, error) {
	subject, err := a.tokenService.Verify(ctx, token)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
	}

	user, err := a.userStore.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: token subject does not exist",
				"username", subject)
			return model.User{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, model.ErrUserNotFound)
		}
		a.logger.Error("Auth service: failed to get user by username",
			"username", subject,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// EnsureDefaultUser creates the given account when no user exists yet.
// It reports whether an account was created.
func (a *Auth) EnsureDefaultUser(ctx context.Context, username, password string) (bool, error) {
	count, err := a.userStore.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		a.logger.Debug("Auth service: users present, skipping seed",
			"count", count)
		return false, nil
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: default user created",
		"username", user.Username,
		"user_id", user.ID)

	return true, nil
}
