package domain

import (
	"context"

	"github.com/google/uuid"
)

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// GetByConnectedAccount retrieves the asset linked to a connected
	// account, or ErrNotFound if none is linked
	GetByConnectedAccount(ctx context.Context, accountID uuid.UUID) (*Asset, error)

	// List retrieves all assets
	List(ctx context.Context) ([]*Asset, error)

	// Create creates a new asset
	Create(ctx context.Context, asset *Asset) error

	// Update persists changes to an existing asset
	Update(ctx context.Context, asset *Asset) error

	// Delete removes an asset
	Delete(ctx context.Context, id uuid.UUID) error
}

// LiabilityRepository defines the interface for liability persistence operations
type LiabilityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Liability, error)
	GetByConnectedAccount(ctx context.Context, accountID uuid.UUID) (*Liability, error)
	List(ctx context.Context) ([]*Liability, error)
	Create(ctx context.Context, liability *Liability) error
	Update(ctx context.Context, liability *Liability) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConnectedAccountRepository defines the interface for connected account
// persistence operations
type ConnectedAccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ConnectedAccount, error)

	// List retrieves connected accounts; activeOnly limits the result to
	// accounts still eligible for sync
	List(ctx context.Context, activeOnly bool) ([]*ConnectedAccount, error)

	Create(ctx context.Context, account *ConnectedAccount) error
	Update(ctx context.Context, account *ConnectedAccount) error
}

// SecurityRepository defines the interface for security reference data
type SecurityRepository interface {
	// List retrieves all known securities
	List(ctx context.Context) ([]*Security, error)

	// UpsertByProviderID creates the security or refreshes it in place,
	// matching on ProviderSecurityID, and returns the stored row
	UpsertByProviderID(ctx context.Context, security *Security) (*Security, error)
}

// HoldingRepository defines the interface for holding persistence operations
type HoldingRepository interface {
	// ListByAccount retrieves holdings for one connected account
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Holding, error)

	// List retrieves holdings across all connected accounts
	List(ctx context.Context) ([]*Holding, error)

	// ReplaceForAccount swaps the account's holdings for a freshly-synced
	// set (full refresh)
	ReplaceForAccount(ctx context.Context, accountID uuid.UUID, holdings []*Holding) error
}

// TransactionRepository defines the interface for transaction persistence
// operations. Transactions are keyed by the provider's transaction id so the
// incremental feed can add, modify and remove them idempotently.
type TransactionRepository interface {
	// ListByAccount retrieves transactions for one connected account, newest
	// first
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Transaction, error)

	// UpsertByProviderID creates the transaction or refreshes it in place,
	// matching on ProviderTransactionID
	UpsertByProviderID(ctx context.Context, transaction *Transaction) error

	// DeleteByProviderID removes the transaction the provider retracted;
	// deleting an unknown id is not an error
	DeleteByProviderID(ctx context.Context, providerTransactionID string) error
}

// OnboardingRepository is the source of truth for the onboarding session
type OnboardingRepository interface {
	// GetOrCreate retrieves the session, creating a fresh one at the first
	// question when none exists
	GetOrCreate(ctx context.Context) (*OnboardingState, error)

	// Get retrieves the session, ErrNotFound when onboarding never started
	Get(ctx context.Context) (*OnboardingState, error)

	// Save persists the whole session state
	Save(ctx context.Context, state *OnboardingState) error

	// Reset discards the session
	Reset(ctx context.Context) error
}
