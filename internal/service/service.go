package service

import (
	"context"

	"product-insights/internal/model"
)

// AuthService defines user registration and login.
type AuthService interface {
	// Signup hashes the password and stores a new user.
	Signup(ctx context.Context, creds model.Credentials) error

	// Login verifies credentials and returns a signed access token.
	// Returns model.ErrInvalidCredentials for an unknown user or wrong password.
	Login(ctx context.Context, creds model.Credentials) (string, error)
}

// ProductService defines CSV ingestion and reporting.
type ProductService interface {
	// LoadCSV reads, cleans and stores the CSV at path. Returns the number of rows stored.
	LoadCSV(ctx context.Context, path string) (int, error)

	// Summary computes the per-category report and persists it.
	Summary(ctx context.Context) ([]model.CategorySummary, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// TokenIssuer issues signed access tokens.
type TokenIssuer interface {
	Issue(username string) (string, error)
}
