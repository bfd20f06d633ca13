package repository

import (
	"context"
	"errors"
	"fmt"

	"product-insights/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface using GORM.
type userRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewUserRepository creates a new GORM-backed user repository.
func NewUserRepository(db *gorm.DB, logger zerolog.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create inserts a new user. The unique index on username rejects duplicates.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Warn().Str("username", user.Username).Msg("username already exists")
			return fmt.Errorf("failed to create user: %w", model.ErrUsernameTaken)
		}
		r.logger.Error().Err(err).Str("username", user.Username).Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Msg("user created successfully")

	return nil
}

// GetByUsername retrieves a user by username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug().Str("username", username).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("username", username).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
