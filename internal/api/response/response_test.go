package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/api/response"
)

// TestRespondError tests the standard error body.
func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	response.RespondError(w, http.StatusBadGateway, "spreadsheet source unavailable", "connection refused")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["error"] != "spreadsheet source unavailable" {
		t.Errorf("error = %v", body["error"])
	}
	if body["detail"] != "connection refused" {
		t.Errorf("detail = %v", body["detail"])
	}
	if _, ok := body["missing_columns"]; ok {
		t.Error("missing_columns should be omitted outside schema errors")
	}
}

// TestRespondSchemaError tests the 422 fail-closed body.
func TestRespondSchemaError(t *testing.T) {
	w := httptest.NewRecorder()

	response.RespondSchemaError(w, "missing required columns: Sector", []string{"Sector"})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d", w.Code)
	}

	var body response.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.MissingColumns) != 1 || body.MissingColumns[0] != "Sector" {
		t.Errorf("MissingColumns = %v, want [Sector]", body.MissingColumns)
	}
}

// TestRespondJSON_NilBody verifies that nil data sends only the status code.
func TestRespondJSON_NilBody(t *testing.T) {
	w := httptest.NewRecorder()

	response.RespondJSON(w, http.StatusNoContent, nil)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %d bytes", w.Body.Len())
	}
}
