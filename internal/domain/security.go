package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SecurityType classifies a security for portfolio grouping
type SecurityType string

const (
	SecurityTypeEquity      SecurityType = "equity"
	SecurityTypeETF         SecurityType = "etf"
	SecurityTypeFund        SecurityType = "fund"
	SecurityTypeCash        SecurityType = "cash"
	SecurityTypeFixedIncome SecurityType = "fixed_income"
	SecurityTypeOther       SecurityType = "other"
)

// Label returns the display label for the security type
func (t SecurityType) Label() string {
	switch t {
	case SecurityTypeEquity:
		return "Stocks"
	case SecurityTypeETF:
		return "ETFs"
	case SecurityTypeFund:
		return "Mutual Funds"
	case SecurityTypeCash:
		return "Cash & Equivalents"
	case SecurityTypeFixedIncome:
		return "Fixed Income"
	case SecurityTypeOther:
		return "Other"
	default:
		return string(t)
	}
}

// Security is shared, read-mostly reference data describing one tradable
// instrument reported by the provider.
type Security struct {
	ID                 uuid.UUID
	ProviderSecurityID string
	Name               string
	Ticker             string // may be empty
	Type               SecurityType
	IsCashEquivalent   bool
	ClosePrice         *decimal.Decimal // NULL when the provider has no quote
	Currency           string
}

// GroupType returns the portfolio group the security belongs to. Cash
// equivalence overrides the declared type so money-market funds land in the
// cash group.
func (s *Security) GroupType() SecurityType {
	if s.IsCashEquivalent {
		return SecurityTypeCash
	}
	switch s.Type {
	case SecurityTypeEquity, SecurityTypeETF, SecurityTypeFund,
		SecurityTypeCash, SecurityTypeFixedIncome:
		return s.Type
	default:
		return SecurityTypeOther
	}
}
