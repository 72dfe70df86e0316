// Package holdings collapses per-account investment positions into one
// portfolio view: the same security held across several linked accounts
// becomes a single aggregate with blended price, combined cost basis and
// per-account provenance.
package holdings

import (
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// AccountPosition records one account's contribution to an aggregate
type AccountPosition struct {
	AccountID       uuid.UUID
	AccountName     string
	InstitutionName string
	Quantity        decimal.Decimal
	Value           decimal.Decimal
}

// AggregatedHolding is one security's position collapsed across every account
// that holds it. Cost basis and gain/loss are tracked with explicit known
// flags: an aggregate where any contributing holding lacks a basis has no
// basis at all, never a partial one, since a partial basis would imply a
// false gain.
type AggregatedHolding struct {
	SecurityID uuid.UUID
	Security   *domain.Security

	Quantity decimal.Decimal
	Value    decimal.Decimal

	CostBasis      decimal.Decimal
	CostBasisKnown bool

	AveragePrice decimal.Decimal

	GainLoss             decimal.Decimal
	GainLossKnown        bool
	GainLossPercent      float64
	GainLossPercentKnown bool

	Accounts []AccountPosition
}

// MultiAccount reports whether more than one account contributes
func (h *AggregatedHolding) MultiAccount() bool {
	return len(h.Accounts) > 1
}

// Group collects aggregates of one security type
type Group struct {
	Type         domain.SecurityType
	Label        string
	TotalValue   decimal.Decimal
	HoldingCount int
	Holdings     []AggregatedHolding
}

// PortfolioView is the reconciled portfolio across all linked accounts
type PortfolioView struct {
	TotalValue    decimal.Decimal
	TotalHoldings int
	Groups        []Group
}

// Reconcile merges raw per-account holdings into per-security aggregates and
// groups them by security type. Pure computation over its inputs; holdings
// referencing securities absent from the map are dropped, and fully-divested
// positions (zero quantity and value) never surface.
func Reconcile(holdings []*domain.Holding, securities map[uuid.UUID]*domain.Security, accounts map[uuid.UUID]*domain.ConnectedAccount) PortfolioView {
	aggregates := aggregateBySecurity(holdings, securities, accounts)

	groups := make(map[domain.SecurityType]*Group)
	var groupOrder []domain.SecurityType
	totalValue := decimal.Zero

	for _, agg := range aggregates {
		totalValue = totalValue.Add(agg.Value)

		groupType := agg.Security.GroupType()
		g, ok := groups[groupType]
		if !ok {
			g = &Group{Type: groupType, Label: groupType.Label()}
			groups[groupType] = g
			groupOrder = append(groupOrder, groupType)
		}
		g.Holdings = append(g.Holdings, agg)
		g.TotalValue = g.TotalValue.Add(agg.Value)
		g.HoldingCount++
	}

	view := PortfolioView{
		TotalValue:    totalValue,
		TotalHoldings: len(aggregates),
		Groups:        make([]Group, 0, len(groupOrder)),
	}
	for _, groupType := range groupOrder {
		g := groups[groupType]
		sort.SliceStable(g.Holdings, func(i, j int) bool {
			if !g.Holdings[i].Value.Equal(g.Holdings[j].Value) {
				return g.Holdings[i].Value.GreaterThan(g.Holdings[j].Value)
			}
			return g.Holdings[i].Security.Name < g.Holdings[j].Security.Name
		})
		view.Groups = append(view.Groups, *g)
	}

	sort.SliceStable(view.Groups, func(i, j int) bool {
		if !view.Groups[i].TotalValue.Equal(view.Groups[j].TotalValue) {
			return view.Groups[i].TotalValue.GreaterThan(view.Groups[j].TotalValue)
		}
		return view.Groups[i].Type < view.Groups[j].Type
	})

	return view
}

// aggregateBySecurity folds holdings into one aggregate per security,
// preserving first-seen order for determinism.
func aggregateBySecurity(holdings []*domain.Holding, securities map[uuid.UUID]*domain.Security, accounts map[uuid.UUID]*domain.ConnectedAccount) []AggregatedHolding {
	byID := make(map[uuid.UUID]*AggregatedHolding)
	var order []uuid.UUID

	for _, h := range holdings {
		security, ok := securities[h.SecurityID]
		if !ok {
			continue
		}

		agg, ok := byID[h.SecurityID]
		if !ok {
			agg = &AggregatedHolding{
				SecurityID:     h.SecurityID,
				Security:       security,
				CostBasisKnown: true,
			}
			byID[h.SecurityID] = agg
			order = append(order, h.SecurityID)
		}

		agg.Quantity = agg.Quantity.Add(h.Quantity)
		agg.Value = agg.Value.Add(h.InstitutionValue)

		// Basis is only meaningful when every contributor reports one
		if h.CostBasis == nil {
			agg.CostBasisKnown = false
			agg.CostBasis = decimal.Zero
		} else if agg.CostBasisKnown {
			agg.CostBasis = agg.CostBasis.Add(*h.CostBasis)
		}

		position := AccountPosition{
			AccountID: h.ConnectedAccountID,
			Quantity:  h.Quantity,
			Value:     h.InstitutionValue,
		}
		if account, ok := accounts[h.ConnectedAccountID]; ok {
			position.AccountName = account.AccountName
			position.InstitutionName = account.InstitutionName
		}
		agg.Accounts = append(agg.Accounts, position)
	}

	aggregates := make([]AggregatedHolding, 0, len(order))
	for _, id := range order {
		agg := byID[id]
		if agg.Quantity.IsZero() && agg.Value.IsZero() {
			// fully divested
			continue
		}
		finalize(agg)
		aggregates = append(aggregates, *agg)
	}
	return aggregates
}

// finalize derives average price and gain/loss once sums are complete
func finalize(agg *AggregatedHolding) {
	if !agg.Quantity.IsZero() {
		agg.AveragePrice = agg.Value.Div(agg.Quantity)
	}

	if agg.CostBasisKnown {
		agg.GainLoss = agg.Value.Sub(agg.CostBasis)
		agg.GainLossKnown = true
		if agg.CostBasis.IsPositive() {
			percent, _ := agg.GainLoss.Div(agg.CostBasis).Mul(decimal.NewFromInt(100)).Float64()
			agg.GainLossPercent = percent
			agg.GainLossPercentKnown = true
		}
	}

	sort.SliceStable(agg.Accounts, func(i, j int) bool {
		if !agg.Accounts[i].Value.Equal(agg.Accounts[j].Value) {
			return agg.Accounts[i].Value.GreaterThan(agg.Accounts[j].Value)
		}
		return agg.Accounts[i].AccountID.String() < agg.Accounts[j].AccountID.String()
	})
}

// ContributedValue sums the provenance list, which by construction equals the
// aggregate's value
func (h *AggregatedHolding) ContributedValue() decimal.Decimal {
	return lo.Reduce(h.Accounts, func(acc decimal.Decimal, p AccountPosition, _ int) decimal.Decimal {
		return acc.Add(p.Value)
	}, decimal.Zero)
}
