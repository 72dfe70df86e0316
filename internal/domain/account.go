package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConnectedAccount tracks one account linked through an aggregation provider,
// plus its sync status. At most one Asset or Liability references it.
type ConnectedAccount struct {
	ID       uuid.UUID
	Provider string // e.g. "plaid"

	// Provider identifiers. The item id is the opaque handle the provider
	// client uses; credential storage lives outside this module.
	ProviderItemID    string
	ProviderAccountID string

	InstitutionName string
	AccountName     string
	AccountType     string // "depository", "investment", "credit", "loan", ...
	AccountSubtype  string // "checking", "credit card", ... may be empty

	IsActive      bool
	LastSyncedAt  *time.Time
	LastSyncError *string

	// TransactionsCursor marks where the provider's incremental transaction
	// feed left off; empty means transactions were never synced
	TransactionsCursor string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName is the default name for entities created from this account
func (a *ConnectedAccount) DisplayName() string {
	return a.InstitutionName + " " + a.AccountName
}

// IsInvestment reports whether the account carries holdings rather than
// transactions
func (a *ConnectedAccount) IsInvestment() bool {
	return a.AccountType == "investment"
}
