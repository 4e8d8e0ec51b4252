package charts_test

import (
	"bytes"
	"testing"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/charts"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// TestRenderSectorBar tests PNG rendering of the sector breakdown.
//
// WHY: Rendering runs against arbitrary aggregation output, including
// all-negative and single-row inputs; every valid input must produce a
// decodable PNG and every empty input a plain error.
func TestRenderSectorBar(t *testing.T) {
	t.Run("renders mixed gains and losses", func(t *testing.T) {
		rows := []model.SectorBreakdownRow{
			{Sector: "Technology", TotalInvested: 100, TotalMarketValue: 150, NetGainLoss: 50},
			{Sector: "Energy", TotalInvested: 200, TotalMarketValue: 180, NetGainLoss: -20},
		}

		png, err := charts.RenderSectorBar(rows)
		if err != nil {
			t.Fatalf("RenderSectorBar failed: %v", err)
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("Output does not start with the PNG signature")
		}
	})

	t.Run("renders a single all-negative sector", func(t *testing.T) {
		rows := []model.SectorBreakdownRow{
			{Sector: "Retail", TotalInvested: 500, TotalMarketValue: 420, NetGainLoss: -80},
		}

		png, err := charts.RenderSectorBar(rows)
		if err != nil {
			t.Fatalf("RenderSectorBar failed: %v", err)
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("Output does not start with the PNG signature")
		}
	})

	t.Run("empty input returns an error", func(t *testing.T) {
		if _, err := charts.RenderSectorBar(nil); err == nil {
			t.Error("Expected an error for empty input")
		}
	})
}

// TestRenderTopHoldingsPie tests PNG rendering of the top holdings.
func TestRenderTopHoldingsPie(t *testing.T) {
	t.Run("renders positive holdings", func(t *testing.T) {
		rows := []model.TopHolding{
			{Product: "Fund X", TotalInvested: 100},
			{Product: "Fund Y", TotalInvested: 50},
			{Product: "Fund Z", TotalInvested: 25},
		}

		png, err := charts.RenderTopHoldingsPie(rows)
		if err != nil {
			t.Fatalf("RenderTopHoldingsPie failed: %v", err)
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("Output does not start with the PNG signature")
		}
	})

	t.Run("skips non-positive values", func(t *testing.T) {
		rows := []model.TopHolding{
			{Product: "Fund X", TotalInvested: 100},
			{Product: "Written Off", TotalInvested: 0},
		}

		png, err := charts.RenderTopHoldingsPie(rows)
		if err != nil {
			t.Fatalf("RenderTopHoldingsPie failed: %v", err)
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("Output does not start with the PNG signature")
		}
	})

	t.Run("no positive values returns an error", func(t *testing.T) {
		rows := []model.TopHolding{
			{Product: "Written Off", TotalInvested: 0},
		}
		if _, err := charts.RenderTopHoldingsPie(rows); err == nil {
			t.Error("Expected an error when no slice has a positive value")
		}
	})

	t.Run("empty input returns an error", func(t *testing.T) {
		if _, err := charts.RenderTopHoldingsPie(nil); err == nil {
			t.Error("Expected an error for empty input")
		}
	})
}
