package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProviderAccount is one account returned by the aggregation provider after a
// link completes, tagged with enough metadata to map it onto a category.
type ProviderAccount struct {
	ProviderItemID    string
	ProviderAccountID string
	InstitutionName   string
	AccountName       string
	AccountType       string
	AccountSubtype    string
}

// ProviderBalance is the balance snapshot the provider reports for one
// account. Current is preferred; Available covers providers that only report
// spendable balance.
type ProviderBalance struct {
	Current   *decimal.Decimal
	Available *decimal.Decimal
}

// Amount resolves the balance to use, zero when the provider reported neither
func (b ProviderBalance) Amount() decimal.Decimal {
	if b.Current != nil {
		return *b.Current
	}
	if b.Available != nil {
		return *b.Available
	}
	return decimal.Zero
}

// ProviderSecurity is reference data for one security as the provider
// describes it
type ProviderSecurity struct {
	ProviderSecurityID string
	Name               string
	Ticker             string
	Type               SecurityType
	IsCashEquivalent   bool
	ClosePrice         *decimal.Decimal
	Currency           string
}

// ProviderHolding is one position as the provider reports it
type ProviderHolding struct {
	ProviderAccountID  string
	ProviderSecurityID string
	Quantity           decimal.Decimal
	InstitutionPrice   decimal.Decimal
	InstitutionValue   decimal.Decimal
	CostBasis          *decimal.Decimal
	Currency           string
}

// ProviderHoldings bundles an item's holdings with the securities they
// reference
type ProviderHoldings struct {
	Securities []ProviderSecurity
	Holdings   []ProviderHolding
}

// ProviderTransaction is one transaction as the provider reports it. Positive
// amounts are money leaving the account, per the provider's convention.
type ProviderTransaction struct {
	ProviderTransactionID string
	ProviderAccountID     string
	Amount                decimal.Decimal
	Currency              string
	Date                  time.Time
	AuthorizedDate        *time.Time
	Name                  string
	MerchantName          string
	CategoryPrimary       string
	CategoryDetailed      string
	PaymentChannel        string
	Pending               bool
}

// ProviderTransactionSync is one page of the provider's incremental
// transaction feed. The cursor names the position after this page; feeding it
// back resumes where the last sync left off.
type ProviderTransactionSync struct {
	Added      []ProviderTransaction
	Modified   []ProviderTransaction
	Removed    []string // provider transaction ids
	NextCursor string
	HasMore    bool
}

// ProviderClient is the account-aggregation provider collaborator. Transport,
// auth and retries are outside this module; implementations live in the shell.
type ProviderClient interface {
	// CreateLinkSession starts a provider link flow and returns its token
	CreateLinkSession(ctx context.Context) (string, error)

	// ExchangeLinkResult trades a completed link result for the accounts it
	// granted access to
	ExchangeLinkResult(ctx context.Context, linkResult string) ([]ProviderAccount, error)

	// GetBalance fetches the current balance for one account of an item
	GetBalance(ctx context.Context, itemID, providerAccountID string) (ProviderBalance, error)

	// GetHoldings fetches holdings and securities for an item
	GetHoldings(ctx context.Context, itemID string) (ProviderHoldings, error)

	// SyncTransactions fetches one page of the item's incremental
	// transaction feed from the given cursor; empty cursor starts from the
	// beginning
	SyncTransactions(ctx context.Context, itemID, cursor string) (ProviderTransactionSync, error)

	// RemoveItem disconnects the item at the provider
	RemoveItem(ctx context.Context, itemID string) error
}
