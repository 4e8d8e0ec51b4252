package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/api/handlers"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/testutil"
)

// TestDashboardHandler_Clients tests the GET /api/dashboard/clients endpoint.
//
// WHY: The client list backs the dashboard's one selection control; the
// frontend depends on it returning the distinct names in stable order.
func TestDashboardHandler_Clients(t *testing.T) {
	t.Run("returns distinct clients in first-encounter order", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		table := testutil.MakeTable("Sheet1",
			testutil.NewHolding().WithClient("Client B").Build(),
			testutil.NewHolding().WithClient("Client A").Build(),
			testutil.NewHolding().WithClient("Client B").Build(),
		)
		svc := testutil.NewTestDashboardService(t, db, &testutil.StaticLoader{Table: table})
		handler := handlers.NewDashboardHandler(svc, "$")

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/clients", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Clients(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.ClientsResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response.Clients) != 2 {
			t.Fatalf("Expected 2 clients, got %d", len(response.Clients))
		}
		if response.Clients[0] != "Client B" || response.Clients[1] != "Client A" {
			t.Errorf("Clients = %v, want [Client B, Client A]", response.Clients)
		}
	})

	t.Run("source failure without snapshot returns 502", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		loader := &testutil.StaticLoader{Err: fmt.Errorf("connection refused")}
		svc := testutil.NewTestDashboardService(t, db, loader)
		handler := handlers.NewDashboardHandler(svc, "$")

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/clients", nil)
		w := httptest.NewRecorder()

		handler.Clients(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected status 502, got %d", w.Code)
		}
	})
}

// TestDashboardHandler_Summary tests the GET /api/dashboard/summary endpoint.
func TestDashboardHandler_Summary(t *testing.T) {
	newHandler := func(t *testing.T) *handlers.DashboardHandler {
		t.Helper()
		db := testutil.SetupTestDB(t)
		table := testutil.MakeTable("Sheet1",
			testutil.NewHolding().WithClient("Client A").WithProduct("Fund X").WithAmounts(100, 150).Build(),
			testutil.NewHolding().WithClient("Client A").WithProduct("Fund Y").WithAmounts(50, 40).Build(),
		)
		svc := testutil.NewTestDashboardService(t, db, &testutil.StaticLoader{Table: table})
		return handlers.NewDashboardHandler(svc, "$")
	}

	t.Run("returns three KPI tiles with currency prefix", func(t *testing.T) {
		handler := newHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/summary",
			map[string]string{"client": "Client A"})
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.SummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.KPIs) != 3 {
			t.Fatalf("Expected 3 KPI tiles, got %d", len(response.KPIs))
		}

		want := []handlers.KPITile{
			{Label: "Total Investment", Value: 150, Prefix: "$"},
			{Label: "Total Market Value", Value: 190, Prefix: "$"},
			{Label: "Net Gain/Loss", Value: 40, Prefix: "$"},
		}
		for i, tile := range want {
			if response.KPIs[i] != tile {
				t.Errorf("KPI %d = %+v, want %+v", i, response.KPIs[i], tile)
			}
		}
	})

	t.Run("missing client parameter returns 400", func(t *testing.T) {
		handler := newHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestDashboardHandler_MissingColumns tests the fail-closed rendering path.
//
// WHY: A worksheet missing required columns must produce a single message
// enumerating every missing name and no partial dashboard output.
func TestDashboardHandler_MissingColumns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	table := testutil.MakeTable("Sheet1")
	table.Headers = []string{"Client Name", "Product Name"}
	svc := testutil.NewTestDashboardService(t, db, &testutil.StaticLoader{Table: table})
	handler := handlers.NewDashboardHandler(svc, "$")

	req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/summary",
		map[string]string{"client": "Client A"})
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d", w.Code)
	}

	var response struct {
		Error          string   `json:"error"`
		MissingColumns []string `json:"missing_columns"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := []string{"Investment Amount", "Market Value", "Gain/Loss", "Sector"}
	if len(response.MissingColumns) != len(want) {
		t.Fatalf("Missing columns = %v, want %v", response.MissingColumns, want)
	}
	for i := range want {
		if response.MissingColumns[i] != want[i] {
			t.Errorf("Missing column %d = %q, want %q", i, response.MissingColumns[i], want[i])
		}
	}
	if response.Error == "" {
		t.Error("Expected a user-visible error message")
	}
}

// TestDashboardHandler_Holdings tests the GET /api/dashboard/holdings endpoint.
func TestDashboardHandler_Holdings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	table := testutil.MakeTable("Sheet1",
		testutil.NewHolding().WithClient("Client A").WithProduct("Fund X").WithAmounts(100, 110).Build(),
		testutil.NewHolding().WithClient("Client A").WithProduct("Fund Y").WithAmounts(50, 60).Build(),
	)
	svc := testutil.NewTestDashboardService(t, db, &testutil.StaticLoader{Table: table})
	handler := handlers.NewDashboardHandler(svc, "$")

	req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/holdings",
		map[string]string{"client": "Client A"})
	w := httptest.NewRecorder()

	handler.Holdings(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response handlers.HoldingsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(response.Holdings) != 2 {
		t.Fatalf("Expected 2 holdings, got %d", len(response.Holdings))
	}
	if response.Holdings[0].Product != "Fund X" || response.Holdings[0].TotalInvested != 100 {
		t.Errorf("First holding = %+v, want Fund X:100", response.Holdings[0])
	}
	if response.Holdings[1].Product != "Fund Y" || response.Holdings[1].TotalInvested != 50 {
		t.Errorf("Second holding = %+v, want Fund Y:50", response.Holdings[1])
	}
}

// TestDashboardHandler_Sectors tests the GET /api/dashboard/sectors endpoint.
func TestDashboardHandler_Sectors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	table := testutil.MakeTable("Sheet1",
		testutil.NewHolding().WithClient("Client A").WithSector("Tech").WithAmounts(100, 150).Build(),
		testutil.NewHolding().WithClient("Client A").WithSector("Energy").WithAmounts(200, 180).Build(),
	)
	svc := testutil.NewTestDashboardService(t, db, &testutil.StaticLoader{Table: table})
	handler := handlers.NewDashboardHandler(svc, "$")

	req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/sectors",
		map[string]string{"client": "Client A"})
	w := httptest.NewRecorder()

	handler.Sectors(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response handlers.SectorsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(response.Sectors) != 2 {
		t.Fatalf("Expected 2 sector rows, got %d", len(response.Sectors))
	}
	if response.Sectors[0].Sector != "Tech" || response.Sectors[0].NetGainLoss != 50 {
		t.Errorf("First sector = %+v, want Tech with net 50", response.Sectors[0])
	}
	if response.Sectors[1].Sector != "Energy" || response.Sectors[1].NetGainLoss != -20 {
		t.Errorf("Second sector = %+v, want Energy with net -20", response.Sectors[1])
	}
}

// TestDashboardHandler_Refresh tests the POST /api/dashboard/refresh endpoint.
func TestDashboardHandler_Refresh(t *testing.T) {
	db := testutil.SetupTestDB(t)
	loader := &testutil.StaticLoader{Table: testutil.MakeTable("Sheet1", testutil.NewHolding().Build())}
	svc := testutil.NewTestDashboardService(t, db, loader)
	handler := handlers.NewDashboardHandler(svc, "$")

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/refresh", nil)
	w := httptest.NewRecorder()

	handler.Refresh(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if loader.Fetches() != 1 {
		t.Errorf("Expected refresh to fetch the worksheet, got %d fetches", loader.Fetches())
	}
}
