package accountsync

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// MockConnectedAccountRepository is a mock implementation of
// ConnectedAccountRepository for testing
type MockConnectedAccountRepository struct {
	mock.Mock
}

func (m *MockConnectedAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ConnectedAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectedAccount), args.Error(1)
}

func (m *MockConnectedAccountRepository) List(ctx context.Context, activeOnly bool) ([]*domain.ConnectedAccount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ConnectedAccount), args.Error(1)
}

func (m *MockConnectedAccountRepository) Create(ctx context.Context, account *domain.ConnectedAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockConnectedAccountRepository) Update(ctx context.Context, account *domain.ConnectedAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockAssetRepository is a mock implementation of AssetRepository for testing
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) GetByConnectedAccount(ctx context.Context, accountID uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLiabilityRepository is a mock implementation of LiabilityRepository for testing
type MockLiabilityRepository struct {
	mock.Mock
}

func (m *MockLiabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Liability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) GetByConnectedAccount(ctx context.Context, accountID uuid.UUID) (*domain.Liability, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) List(ctx context.Context) ([]*domain.Liability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) Create(ctx context.Context, liability *domain.Liability) error {
	args := m.Called(ctx, liability)
	return args.Error(0)
}

func (m *MockLiabilityRepository) Update(ctx context.Context, liability *domain.Liability) error {
	args := m.Called(ctx, liability)
	return args.Error(0)
}

func (m *MockLiabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSecurityRepository is a mock implementation of SecurityRepository for testing
type MockSecurityRepository struct {
	mock.Mock
}

func (m *MockSecurityRepository) List(ctx context.Context) ([]*domain.Security, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Security), args.Error(1)
}

func (m *MockSecurityRepository) UpsertByProviderID(ctx context.Context, security *domain.Security) (*domain.Security, error) {
	args := m.Called(ctx, security)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Security), args.Error(1)
}

// MockHoldingRepository is a mock implementation of HoldingRepository for testing
type MockHoldingRepository struct {
	mock.Mock
}

func (m *MockHoldingRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Holding, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) List(ctx context.Context) ([]*domain.Holding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) ReplaceForAccount(ctx context.Context, accountID uuid.UUID, holdings []*domain.Holding) error {
	args := m.Called(ctx, accountID, holdings)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of TransactionRepository for testing
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpsertByProviderID(ctx context.Context, transaction *domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteByProviderID(ctx context.Context, providerTransactionID string) error {
	args := m.Called(ctx, providerTransactionID)
	return args.Error(0)
}

// MockProviderClient is a mock implementation of ProviderClient for testing
type MockProviderClient struct {
	mock.Mock
}

func (m *MockProviderClient) CreateLinkSession(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockProviderClient) ExchangeLinkResult(ctx context.Context, linkResult string) ([]domain.ProviderAccount, error) {
	args := m.Called(ctx, linkResult)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderAccount), args.Error(1)
}

func (m *MockProviderClient) GetBalance(ctx context.Context, itemID, providerAccountID string) (domain.ProviderBalance, error) {
	args := m.Called(ctx, itemID, providerAccountID)
	return args.Get(0).(domain.ProviderBalance), args.Error(1)
}

func (m *MockProviderClient) GetHoldings(ctx context.Context, itemID string) (domain.ProviderHoldings, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(domain.ProviderHoldings), args.Error(1)
}

func (m *MockProviderClient) SyncTransactions(ctx context.Context, itemID, cursor string) (domain.ProviderTransactionSync, error) {
	args := m.Called(ctx, itemID, cursor)
	return args.Get(0).(domain.ProviderTransactionSync), args.Error(1)
}

func (m *MockProviderClient) RemoveItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
