// Package networth merges asset and liability records, manual or synced, into
// one consolidated summary with per-category breakdowns. Summarize and
// Breakdown are pure; the aggregator takes every record's value as-is and
// leaves "whose number wins" to the sync layer.
package networth

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// Record is one categorized value entering a breakdown
type Record struct {
	Category string
	Value    decimal.Decimal
}

// CategoryBreakdown is one slice of a side's proportional decomposition
type CategoryBreakdown struct {
	Category   string
	Label      string
	Value      decimal.Decimal
	Percentage float64
	Color      string
}

// NetWorthSummary is the consolidated picture across both sides
type NetWorthSummary struct {
	TotalAssets        decimal.Decimal
	TotalLiabilities   decimal.Decimal
	NetWorth           decimal.Decimal
	AssetBreakdown     []CategoryBreakdown
	LiabilityBreakdown []CategoryBreakdown
	LastUpdated        time.Time
}

// Summarize computes the full net-worth summary from the provided records.
// Pure: safe to recompute on every view refresh.
func Summarize(assets []*domain.Asset, liabilities []*domain.Liability) NetWorthSummary {
	totalAssets := lo.Reduce(assets, func(acc decimal.Decimal, a *domain.Asset, _ int) decimal.Decimal {
		return acc.Add(a.Value)
	}, decimal.Zero)

	totalLiabilities := lo.Reduce(liabilities, func(acc decimal.Decimal, l *domain.Liability, _ int) decimal.Decimal {
		return acc.Add(l.Balance)
	}, decimal.Zero)

	assetRecords := lo.Map(assets, func(a *domain.Asset, _ int) Record {
		return Record{Category: string(a.Category), Value: a.Value}
	})
	liabilityRecords := lo.Map(liabilities, func(l *domain.Liability, _ int) Record {
		return Record{Category: string(l.Category), Value: l.Balance}
	})

	return NetWorthSummary{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
		AssetBreakdown: Breakdown(assetRecords, totalAssets,
			func(c string) string { return domain.AssetCategory(c).Label() },
			func(c string) string { return domain.AssetCategory(c).Color() }),
		LiabilityBreakdown: Breakdown(liabilityRecords, totalLiabilities,
			func(c string) string { return domain.LiabilityCategory(c).Label() },
			func(c string) string { return domain.LiabilityCategory(c).Color() }),
		LastUpdated: time.Now().UTC(),
	}
}

// Breakdown partitions records by category and computes each category's share
// of total. Categories whose total is not positive are excluded, so an empty
// or zero-valued side yields an empty breakdown rather than NaN percentages.
// Output is sorted by descending value, ties broken by category id, so the
// order never depends on map iteration.
func Breakdown(records []Record, total decimal.Decimal, labelFn, colorFn func(category string) string) []CategoryBreakdown {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, r := range records {
		if _, ok := totals[r.Category]; !ok {
			order = append(order, r.Category)
		}
		totals[r.Category] = totals[r.Category].Add(r.Value)
	}

	breakdown := make([]CategoryBreakdown, 0, len(order))
	for _, category := range order {
		value := totals[category]
		if !value.IsPositive() {
			continue
		}

		percentage := 0.0
		if total.IsPositive() {
			percentage, _ = value.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}

		breakdown = append(breakdown, CategoryBreakdown{
			Category:   category,
			Label:      labelFn(category),
			Value:      value,
			Percentage: percentage,
			Color:      colorFn(category),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		if !breakdown[i].Value.Equal(breakdown[j].Value) {
			return breakdown[i].Value.GreaterThan(breakdown[j].Value)
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return breakdown
}
