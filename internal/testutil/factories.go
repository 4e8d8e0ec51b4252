package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/validation"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build()
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithClient("Client B").
//	    WithSector("Energy").
//	    WithAmounts(500, 450).
//	    Build()
type HoldingBuilder struct {
	holding model.Holding
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		holding: model.Holding{
			Client:      "Client A",
			Product:     "Fund X",
			Sector:      "Technology",
			Investment:  100,
			MarketValue: 120,
			GainLoss:    20,
		},
	}
}

// WithClient sets the client name.
func (b *HoldingBuilder) WithClient(client string) *HoldingBuilder {
	b.holding.Client = client
	return b
}

// WithProduct sets the product name.
func (b *HoldingBuilder) WithProduct(product string) *HoldingBuilder {
	b.holding.Product = product
	return b
}

// WithSector sets the sector.
func (b *HoldingBuilder) WithSector(sector string) *HoldingBuilder {
	b.holding.Sector = sector
	return b
}

// WithAmounts sets the investment and market value; gain/loss follows as
// their difference.
func (b *HoldingBuilder) WithAmounts(investment, marketValue float64) *HoldingBuilder {
	b.holding.Investment = investment
	b.holding.MarketValue = marketValue
	b.holding.GainLoss = marketValue - investment
	return b
}

// Build returns the constructed holding.
func (b *HoldingBuilder) Build() model.Holding {
	return b.holding
}

// MakeTable builds a worksheet table with the full required column set from
// typed holdings. Row order follows the holdings order.
func MakeTable(worksheet string, holdings ...model.Holding) sheets.Table {
	rows := make([][]string, len(holdings))
	for i, h := range holdings {
		rows[i] = []string{
			h.Client,
			h.Product,
			fmt.Sprintf("%g", h.Investment),
			fmt.Sprintf("%g", h.MarketValue),
			fmt.Sprintf("%g", h.GainLoss),
			h.Sector,
		}
	}

	return sheets.Table{
		SheetURL:  "https://example.com/holdings.csv",
		Worksheet: worksheet,
		Headers:   append([]string{}, validation.RequiredColumns...),
		Rows:      rows,
		FetchedAt: time.Now().UTC(),
	}
}

// MakeCSV renders holdings as the CSV document a worksheet fetch would
// return, including the required header row.
func MakeCSV(holdings ...model.Holding) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(validation.RequiredColumns, ","))
	sb.WriteString("\n")
	for _, h := range holdings {
		sb.WriteString(fmt.Sprintf("%s,%s,%g,%g,%g,%s\n",
			h.Client, h.Product, h.Investment, h.MarketValue, h.GainLoss, h.Sector))
	}
	return sb.String()
}
