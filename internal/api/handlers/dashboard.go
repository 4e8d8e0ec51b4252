package handlers

import (
	"net/http"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/apperrors"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/service"
)

// DashboardHandler handles dashboard-related HTTP requests. Every endpoint
// runs the full load → validate → filter → aggregate pipeline for the
// requested worksheet and client; nothing is precomputed between requests
// beyond the loader cache.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	currencyPrefix   string
}

// NewDashboardHandler creates a new DashboardHandler. currencyPrefix is the
// prefix attached to each KPI tile (e.g. "$").
func NewDashboardHandler(dashboardService *service.DashboardService, currencyPrefix string) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		currencyPrefix:   currencyPrefix,
	}
}

// ClientsResponse represents the client selection list
type ClientsResponse struct {
	Clients []string `json:"clients"`
	Stale   bool     `json:"stale"`
}

// Clients returns the distinct client names available for selection.
//
// Endpoint: GET /api/dashboard/clients?worksheet=
func (h *DashboardHandler) Clients(w http.ResponseWriter, r *http.Request) {
	clients, stale, err := h.dashboardService.Clients(r.Context(), r.URL.Query().Get("worksheet"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ClientsResponse{Clients: clients, Stale: stale})
}

// KPITile is one indicator tile: a label, its numeric value, and the
// currency prefix the frontend renders in front of it.
type KPITile struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Prefix string  `json:"prefix"`
}

// SummaryResponse represents the scalar KPI response for one client
type SummaryResponse struct {
	Client string    `json:"client"`
	KPIs   []KPITile `json:"kpis"`
	Stale  bool      `json:"stale"`
}

// Summary returns the three scalar KPIs for the selected client.
//
// Endpoint: GET /api/dashboard/summary?client=&worksheet=
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}

	summary, stale, err := h.dashboardService.Summary(r.Context(), r.URL.Query().Get("worksheet"), client)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := SummaryResponse{
		Client: summary.Client,
		KPIs: []KPITile{
			{Label: "Total Investment", Value: summary.TotalInvestment, Prefix: h.currencyPrefix},
			{Label: "Total Market Value", Value: summary.TotalMarketValue, Prefix: h.currencyPrefix},
			{Label: "Net Gain/Loss", Value: summary.NetGainLoss, Prefix: h.currencyPrefix},
		},
		Stale: stale,
	}

	respondJSON(w, http.StatusOK, response)
}

// SectorRowResponse represents one row of the sector breakdown table
type SectorRowResponse struct {
	Sector           string  `json:"sector"`
	TotalInvested    float64 `json:"totalInvested"`
	TotalMarketValue float64 `json:"totalMarketValue"`
	NetGainLoss      float64 `json:"netGainLoss"`
}

// SectorsResponse represents the sector breakdown response for one client
type SectorsResponse struct {
	Client  string              `json:"client"`
	Sectors []SectorRowResponse `json:"sectors"`
	Stale   bool                `json:"stale"`
}

// Sectors returns the per-sector aggregation for the selected client,
// ordered descending by net gain/loss. An empty list is a valid result for
// a client with no rows.
//
// Endpoint: GET /api/dashboard/sectors?client=&worksheet=
func (h *DashboardHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}

	rows, stale, err := h.dashboardService.SectorBreakdown(r.Context(), r.URL.Query().Get("worksheet"), client)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sectors := make([]SectorRowResponse, len(rows))
	for i, row := range rows {
		sectors[i] = SectorRowResponse{
			Sector:           row.Sector,
			TotalInvested:    row.TotalInvested,
			TotalMarketValue: row.TotalMarketValue,
			NetGainLoss:      row.NetGainLoss,
		}
	}

	respondJSON(w, http.StatusOK, SectorsResponse{
		Client:  client,
		Sectors: sectors,
		Stale:   stale,
	})
}

// TopHoldingResponse represents one row of the top holdings table
type TopHoldingResponse struct {
	Product       string  `json:"product"`
	TotalInvested float64 `json:"totalInvested"`
}

// HoldingsResponse represents the top holdings response for one client
type HoldingsResponse struct {
	Client   string               `json:"client"`
	Holdings []TopHoldingResponse `json:"holdings"`
	Stale    bool                 `json:"stale"`
}

// Holdings returns the top five products by invested amount for the
// selected client.
//
// Endpoint: GET /api/dashboard/holdings?client=&worksheet=
func (h *DashboardHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	client, ok := requireClient(w, r)
	if !ok {
		return
	}

	rows, stale, err := h.dashboardService.TopHoldings(r.Context(), r.URL.Query().Get("worksheet"), client)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	holdings := make([]TopHoldingResponse, len(rows))
	for i, row := range rows {
		holdings[i] = TopHoldingResponse{
			Product:       row.Product,
			TotalInvested: row.TotalInvested,
		}
	}

	respondJSON(w, http.StatusOK, HoldingsResponse{
		Client:   client,
		Holdings: holdings,
		Stale:    stale,
	})
}

// Refresh clears the loader cache and re-fetches every configured
// worksheet. This is the explicit cache clear: the next render reads fresh
// data.
//
// Endpoint: POST /api/dashboard/refresh
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboardService.Refresh(r.Context()); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

// requireClient extracts the client query parameter, responding 400 when it
// is absent.
func requireClient(w http.ResponseWriter, r *http.Request) (string, bool) {
	client := r.URL.Query().Get("client")
	if client == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": apperrors.ErrClientRequired.Error(),
		})
		return "", false
	}
	return client, true
}
