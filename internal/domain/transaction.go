package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one account transaction as the aggregation provider reports
// it. Amounts follow the provider's convention: positive means money leaving
// the account, negative means money entering it.
type Transaction struct {
	ID                 uuid.UUID
	ConnectedAccountID uuid.UUID

	ProviderTransactionID string
	ProviderAccountID     string

	Amount   decimal.Decimal
	Currency string

	Date           time.Time
	AuthorizedDate *time.Time

	Name         string
	MerchantName string

	CategoryPrimary  string
	CategoryDetailed string
	PaymentChannel   string

	Pending bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOutflow reports whether the transaction took money out of the account
func (t *Transaction) IsOutflow() bool {
	return t.Amount.IsPositive()
}
