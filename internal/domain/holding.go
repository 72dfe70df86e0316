package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is one position of one security inside one connected account, as
// reported by the provider. Many holdings may reference the same security
// across different accounts.
type Holding struct {
	ID                 uuid.UUID
	ConnectedAccountID uuid.UUID
	SecurityID         uuid.UUID
	Quantity           decimal.Decimal
	InstitutionPrice   decimal.Decimal
	InstitutionValue   decimal.Decimal
	CostBasis          *decimal.Decimal // NULL when the institution does not report it
	Currency           string
}
