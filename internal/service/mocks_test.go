package service

import (
	"context"

	"product-insights/internal/cleaner"
	"product-insights/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) InsertBatch(ctx context.Context, products []model.Product) (int, error) {
	args := m.Called(ctx, products)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockPasswordHasher is a mock implementation of PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash, password string) (bool, error) {
	args := m.Called(hash, password)
	return args.Bool(0), args.Error(1)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

// MockLoader is a mock implementation of ingest.Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, path string) ([]cleaner.Row, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cleaner.Row), args.Error(1)
}

// MockReportWriter is a mock implementation of report.Writer.
type MockReportWriter struct {
	mock.Mock
}

func (m *MockReportWriter) Write(ctx context.Context, summaries []model.CategorySummary) error {
	args := m.Called(ctx, summaries)
	return args.Error(0)
}

// MockSummaryCache is a mock implementation of cache.SummaryCache.
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) Get(ctx context.Context) ([]model.CategorySummary, bool, error) {
	args := m.Called(ctx)
	var summaries []model.CategorySummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]model.CategorySummary)
	}
	return summaries, args.Bool(1), args.Error(2)
}

func (m *MockSummaryCache) Set(ctx context.Context, summaries []model.CategorySummary) error {
	args := m.Called(ctx, summaries)
	return args.Error(0)
}

func (m *MockSummaryCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
