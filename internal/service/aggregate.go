package service

import (
	"cmp"
	"slices"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
)

// TopHoldingsLimit caps the per-product aggregation at the five largest
// positions by invested amount. Products beyond the cap are dropped, not
// merged into an "other" bucket.
const TopHoldingsLimit = 5

// FilterByClient returns exactly the records whose client name equals
// client, preserving row order. An empty result is valid: downstream
// aggregation over it yields zero-valued KPIs, not an error.
func FilterByClient(records []model.Holding, client string) []model.Holding {
	filtered := []model.Holding{}
	for _, rec := range records {
		if rec.Client == client {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// DistinctClients returns the distinct client names present in the records,
// in first-encounter order. This backs the dashboard's selection control.
func DistinctClients(records []model.Holding) []string {
	seen := make(map[string]bool)
	clients := []string{}
	for _, rec := range records {
		if !seen[rec.Client] {
			seen[rec.Client] = true
			clients = append(clients, rec.Client)
		}
	}
	return clients
}

// ComputeSummary calculates the three scalar KPIs over a client-filtered
// record set. NetGainLoss is derived from the two computed totals, not
// summed from the per-record gain/loss column, so the identity
// TotalInvestment + NetGainLoss == TotalMarketValue always holds.
func ComputeSummary(records []model.Holding) model.ClientSummary {
	var summary model.ClientSummary
	for _, rec := range records {
		summary.TotalInvestment += rec.Investment
		summary.TotalMarketValue += rec.MarketValue
	}
	summary.NetGainLoss = summary.TotalMarketValue - summary.TotalInvestment
	return summary
}

// ComputeSectorBreakdown groups the records by sector and sums invested
// amount, market value, and per-record net gain/loss for each group.
// Groups are ordered descending by net gain/loss; equal values keep the
// order in which their sector first appeared in the records.
func ComputeSectorBreakdown(records []model.Holding) []model.SectorBreakdownRow {
	index := make(map[string]int)
	rows := []model.SectorBreakdownRow{}

	for _, rec := range records {
		i, ok := index[rec.Sector]
		if !ok {
			i = len(rows)
			index[rec.Sector] = i
			rows = append(rows, model.SectorBreakdownRow{Sector: rec.Sector})
		}
		rows[i].TotalInvested += rec.Investment
		rows[i].TotalMarketValue += rec.MarketValue
		rows[i].NetGainLoss += rec.MarketValue - rec.Investment
	}

	slices.SortStableFunc(rows, func(a, b model.SectorBreakdownRow) int {
		return cmp.Compare(b.NetGainLoss, a.NetGainLoss)
	})

	return rows
}

// ComputeTopHoldings groups the records by product name, sums invested
// amount per group, orders descending by that sum, and truncates to the
// TopHoldingsLimit largest. Equal sums keep first-encounter order.
func ComputeTopHoldings(records []model.Holding) []model.TopHolding {
	index := make(map[string]int)
	rows := []model.TopHolding{}

	for _, rec := range records {
		i, ok := index[rec.Product]
		if !ok {
			i = len(rows)
			index[rec.Product] = i
			rows = append(rows, model.TopHolding{Product: rec.Product})
		}
		rows[i].TotalInvested += rec.Investment
	}

	slices.SortStableFunc(rows, func(a, b model.TopHolding) int {
		return cmp.Compare(b.TotalInvested, a.TotalInvested)
	})

	if len(rows) > TopHoldingsLimit {
		rows = rows[:TopHoldingsLimit]
	}

	return rows
}
