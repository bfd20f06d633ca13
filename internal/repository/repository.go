package repository

import (
	"context"

	"product-insights/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// InsertBatch stores all products in a single transaction and returns the
	// number of rows written. Products with a zero ID get a generated one.
	InsertBatch(ctx context.Context, products []model.Product) (int, error)

	// ListAll retrieves every product ordered by product_id.
	ListAll(ctx context.Context) ([]model.Product, error)
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user and sets its ID.
	// Returns model.ErrUsernameTaken if the username already exists.
	Create(ctx context.Context, user *model.User) error

	// GetByUsername retrieves a user by username. Returns nil, nil when absent.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
