package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/api/response"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/apperrors"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps pipeline errors onto HTTP responses.
//
// Missing required columns fail closed with 422 and one message enumerating
// every missing name; an unreachable source with no stored snapshot maps to
// 502; an unknown worksheet to 404. Anything else is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var missing *validation.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		response.RespondSchemaError(w, missing.Error(), missing.Columns)
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		response.RespondError(w, http.StatusBadGateway, "spreadsheet source unavailable", err.Error())
	case errors.Is(err, apperrors.ErrUnknownWorksheet):
		response.RespondError(w, http.StatusNotFound, "unknown worksheet", err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, "failed to load dashboard data", err.Error())
	}
}
