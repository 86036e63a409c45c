package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"olms-backend/internal/domain"
	"olms-backend/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomerHistory(ctx context.Context, customerID string) (*domain.CustomerHistory, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerHistory), args.Error(1)
}

type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) GenerateReceipt(ctx context.Context, req service.ReceiptRequest) (*service.Receipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Receipt), args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, user *domain.User, req service.UploadRequest) (*service.UploadResult, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockUploadService) Open(ctx context.Context, filename string) (*service.StoredFile, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredFile), args.Error(1)
}

type MockBootstrapService struct {
	mock.Mock
}

func (m *MockBootstrapService) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) Seed(ctx context.Context) (*service.SeedReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedReport), args.Error(1)
}
