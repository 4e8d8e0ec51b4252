package handlers

import (
	"net/http"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/charts"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
)

// SectorChart renders the sector breakdown for the selected client as a PNG
// bar chart. A client with no rows yields 204 No Content rather than an
// error: an empty filtered subset is a valid state.
//
// Endpoint: GET /api/dashboard/charts/sectors.png?client=&worksheet=
func (h *DashboardHandler) SectorChart(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}

	rows, _, err := h.dashboardService.SectorBreakdown(r.Context(), r.URL.Query().Get("worksheet"), client)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if len(rows) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	png, err := charts.RenderSectorBar(rows)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "failed to render sector chart",
			"detail": err.Error(),
		})
		return
	}

	respondPNG(w, png)
}

// HoldingsChart renders the top-five holdings for the selected client as a
// PNG pie chart. A client with no positive invested amounts yields 204.
//
// Endpoint: GET /api/dashboard/charts/holdings.png?client=&worksheet=
func (h *DashboardHandler) HoldingsChart(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}

	rows, _, err := h.dashboardService.TopHoldings(r.Context(), r.URL.Query().Get("worksheet"), client)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if !hasRenderableHolding(rows) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	png, err := charts.RenderTopHoldingsPie(rows)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "failed to render holdings chart",
			"detail": err.Error(),
		})
		return
	}

	respondPNG(w, png)
}

// hasRenderableHolding reports whether any row can form a pie slice. Zero
// invested amounts are reachable through lenient amount parsing, and a
// subset with none positive is a valid empty state, not a render failure.
func hasRenderableHolding(rows []model.TopHolding) bool {
	for _, row := range rows {
		if row.TotalInvested > 0 {
			return true
		}
	}
	return false
}

// respondPNG writes raw PNG bytes with the image content type.
func respondPNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
