package model

// ClientSummary holds the three scalar KPIs for one client's filtered
// holdings. NetGainLoss is always TotalMarketValue minus TotalInvestment,
// recomputed from the two totals rather than summed per record.
type ClientSummary struct {
	Client           string  `json:"client"`
	TotalInvestment  float64 `json:"totalInvestment"`
	TotalMarketValue float64 `json:"totalMarketValue"`
	NetGainLoss      float64 `json:"netGainLoss"`
}

// SectorBreakdownRow is one group in the per-sector aggregation.
// Rows are ordered descending by NetGainLoss; equal values keep the order
// in which their sector was first encountered in the source rows.
type SectorBreakdownRow struct {
	Sector           string  `json:"sector"`
	TotalInvested    float64 `json:"totalInvested"`
	TotalMarketValue float64 `json:"totalMarketValue"`
	NetGainLoss      float64 `json:"netGainLoss"`
}

// TopHolding is one group in the per-product aggregation, ordered
// descending by TotalInvested and capped at the top five products.
type TopHolding struct {
	Product       string  `json:"product"`
	TotalInvested float64 `json:"totalInvested"`
}
