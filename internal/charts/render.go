// Package charts renders the dashboard's aggregation results as PNG images.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
)

var (
	gainColor = drawing.ColorFromHex("16a34a") // green-600
	lossColor = drawing.ColorFromHex("dc2626") // red-600
)

// pieColors cycles across pie slices.
var pieColors = []drawing.Color{
	drawing.ColorFromHex("2563eb"), // blue-600
	drawing.ColorFromHex("f59e0b"), // amber-500
	drawing.ColorFromHex("10b981"), // emerald-500
	drawing.ColorFromHex("8b5cf6"), // violet-500
	drawing.ColorFromHex("ef4444"), // red-500
}

// RenderSectorBar renders a PNG bar chart of net gain/loss per sector.
// Bars keep the input order (descending by net gain/loss); gains are green,
// losses red. Returns raw PNG bytes.
func RenderSectorBar(rows []model.SectorBreakdownRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no sector data to render")
	}

	bars := make([]chart.Value, len(rows))
	for i, row := range rows {
		color := gainColor
		if row.NetGainLoss < 0 {
			color = lossColor
		}
		bars[i] = chart.Value{
			Label: row.Sector,
			Value: row.NetGainLoss,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Title:    "Net Gain/Loss by Sector",
		Width:    900,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderTopHoldingsPie renders a PNG pie chart of total invested per
// top-holding product. Products with a non-positive invested amount cannot
// form a pie slice and are skipped. Returns raw PNG bytes.
func RenderTopHoldingsPie(rows []model.TopHolding) ([]byte, error) {
	values := make([]chart.Value, 0, len(rows))
	for i, row := range rows {
		if row.TotalInvested <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: row.Product,
			Value: row.TotalInvested,
			Style: chart.Style{FillColor: pieColors[i%len(pieColors)]},
		})
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no holdings data to render")
	}

	graph := chart.PieChart{
		Title:  "Top Holdings by Invested Amount",
		Width:  500,
		Height: 500,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
