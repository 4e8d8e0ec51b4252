package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
)

// ParseHoldings converts a raw table into typed holding records. The table
// must already have passed schema validation; a missing column here is
// reported as an error rather than a panic.
//
// Row order is preserved so downstream first-encounter ordering rules hold.
func ParseHoldings(table Table) ([]model.Holding, error) {
	col := make(map[string]int, len(table.Headers))
	for i, h := range table.Headers {
		// First occurrence wins when a header name repeats.
		if _, ok := col[h]; !ok {
			col[h] = i
		}
	}

	for _, name := range []string{"Client Name", "Product Name", "Sector", "Investment Amount", "Market Value", "Gain/Loss"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("column %q not found in table", name)
		}
	}

	holdings := make([]model.Holding, 0, len(table.Rows))
	for _, row := range table.Rows {
		holdings = append(holdings, model.Holding{
			Client:      strings.TrimSpace(row[col["Client Name"]]),
			Product:     strings.TrimSpace(row[col["Product Name"]]),
			Sector:      strings.TrimSpace(row[col["Sector"]]),
			Investment:  parseAmount(row[col["Investment Amount"]]),
			MarketValue: parseAmount(row[col["Market Value"]]),
			GainLoss:    parseAmount(row[col["Gain/Loss"]]),
		})
	}

	return holdings, nil
}

// amountCleaner strips the currency formatting spreadsheet cells commonly
// carry before numeric parsing.
var amountCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// parseAmount parses a spreadsheet cell as a float64. Empty and
// non-numeric cells parse as zero rather than failing the whole load.
func parseAmount(raw string) float64 {
	s := amountCleaner.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
