package service

import (
	"context"
	"fmt"

	"product-insights/internal/model"
	"product-insights/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Signup hashes the password and stores a new user.
func (s *authService) Signup(ctx context.Context, creds model.Credentials) error {
	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("username", creds.Username).Msg("failed to hash password")
		return fmt.Errorf("failed to sign up: %w", err)
	}

	user := &model.User{
		Username:     creds.Username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Msg("user signed up")

	return nil
}

// Login verifies credentials and returns a signed access token.
func (s *authService) Login(ctx context.Context, creds model.Credentials) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	if user == nil {
		s.logger.Info().Str("username", creds.Username).Msg("login rejected")
		return "", model.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(user.PasswordHash, creds.Password)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to verify password")
		return "", fmt.Errorf("failed to log in: %w", err)
	}
	if !ok {
		s.logger.Info().Str("username", creds.Username).Msg("login rejected")
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to issue token")
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")

	return token, nil
}
