package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents something the user owns: a bank balance, a retirement
// account, a property. Created manually, through task completion, or by a
// provider sync. While ConnectedAccountID is set the value is overwritten by
// sync results.
type Asset struct {
	ID                 uuid.UUID
	Category           AssetCategory
	Name               string
	Value              decimal.Decimal
	ConnectedAccountID *uuid.UUID // NULL for manual entries
	LastSyncedAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate ensures the asset adheres to domain rules
func (a *Asset) Validate() error {
	if a.Name == "" {
		return NewValidationError("asset name cannot be empty")
	}
	if !a.Category.Valid() {
		return NewValidationError("unknown asset category %q", a.Category)
	}
	if a.Value.IsNegative() {
		return NewValidationError("asset value cannot be negative")
	}
	return nil
}

// IsConnected reports whether the asset is linked to a provider account
func (a *Asset) IsConnected() bool {
	return a.ConnectedAccountID != nil
}

// Liability represents something the user owes. Balance is stored as a
// positive amount regardless of how the provider reports it.
type Liability struct {
	ID                 uuid.UUID
	Category           LiabilityCategory
	Name               string
	Balance            decimal.Decimal
	InterestRate       *decimal.Decimal // percent, NULL when unknown
	ConnectedAccountID *uuid.UUID
	LastSyncedAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate ensures the liability adheres to domain rules
func (l *Liability) Validate() error {
	if l.Name == "" {
		return NewValidationError("liability name cannot be empty")
	}
	if !l.Category.Valid() {
		return NewValidationError("unknown liability category %q", l.Category)
	}
	if l.Balance.IsNegative() {
		return NewValidationError("liability balance cannot be negative")
	}
	if l.InterestRate != nil {
		if l.InterestRate.IsNegative() || l.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
			return NewValidationError("interest rate must be between 0 and 100")
		}
	}
	return nil
}

// IsConnected reports whether the liability is linked to a provider account
func (l *Liability) IsConnected() bool {
	return l.ConnectedAccountID != nil
}
