// Package services contains the server-side business logic. This file
// implements AuthService, which handles registration and login and issues
// signed access tokens.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/server/auth"
	"github.com/dmitrijs2005/fintrack/internal/server/config"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/repositories/users"
	"github.com/google/uuid"
)

// AuthService provides authentication operations:
// - Register: create an identity and mint its first token
// - Login: verify credentials and mint a token
type AuthService struct {
	users         users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewAuthService constructs an AuthService from the users repository and
// server config. The signing secret is captured here once and never re-read.
func NewAuthService(r users.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		users:         r,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// NormalizeEmail maps an email to its canonical stored form. Uniqueness is
// case-insensitive, so all lookups and inserts go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new identity and returns it together with a token.
// A duplicate email yields common.ErrorEmailTaken; the users table's unique
// index resolves the register/register race, so a concurrent duplicate that
// slips past the lookup fails the same way.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, "", common.ErrorValidation
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", common.ErrorEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, "", common.ErrorEmailTaken
		}
		return nil, "", common.ErrorInternal
	}

	token, err := auth.GenerateToken(created.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return created, token, nil
}

// Login verifies the credentials and returns the identity with a fresh
// token. "No such user" and "wrong password" both return the identical
// common.ErrorInvalidCredentials, so responses never confirm whether an
// email is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}
