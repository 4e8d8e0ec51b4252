// Package response defines the JSON bodies the dashboard API returns for
// errors, and the helpers that write them.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the JSON shape of every API error. Detail carries the
// underlying error text when it adds context beyond the message.
// MissingColumns is populated only for schema validation failures and names
// every required column absent from the loaded worksheet.
type ErrorResponse struct {
	Error          string   `json:"error"`
	Detail         string   `json:"detail,omitempty"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// RespondJSON sends a JSON response with the given status code. If data is
// nil, only the status code is sent. Encoding errors are logged; the status
// line has already been written by then.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends an ErrorResponse with the given status code. message is
// the user-facing description; detail may be empty.
func RespondError(w http.ResponseWriter, status int, message, detail string) {
	RespondJSON(w, status, ErrorResponse{
		Error:  message,
		Detail: detail,
	})
}

// RespondSchemaError sends the fail-closed 422 response for a worksheet
// missing required columns. One response names them all; no partial
// dashboard output accompanies it.
func RespondSchemaError(w http.ResponseWriter, message string, columns []string) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:          message,
		MissingColumns: columns,
	})
}
