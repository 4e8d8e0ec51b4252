package model

// Holding represents a single client position in a financial product,
// attributed to a sector. One row in the source worksheet maps to one Holding.
//
// GainLoss is the source-provided figure and is carried as-is; aggregate
// gain/loss values are always derived from market value and investment
// totals rather than summed from this column.
type Holding struct {
	Client      string  `json:"client"`
	Product     string  `json:"product"`
	Sector      string  `json:"sector"`
	Investment  float64 `json:"investment"`
	MarketValue float64 `json:"marketValue"`
	GainLoss    float64 `json:"gainLoss"`
}
