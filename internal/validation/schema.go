// Package validation provides schema checks for loaded worksheet tables.
package validation

import (
	"fmt"
	"strings"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/apperrors"
)

// RequiredColumns is the fixed set of column names a worksheet must contain
// before any filtering or aggregation happens. Matching is exact and
// case-sensitive.
var RequiredColumns = []string{
	"Client Name",
	"Product Name",
	"Investment Amount",
	"Market Value",
	"Gain/Loss",
	"Sector",
}

// MissingColumnsError reports every required column absent from a loaded
// table in one error, so the caller can surface all missing names in a
// single message.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Unwrap makes the error match apperrors.ErrMissingRequiredColumns with errors.Is.
func (e *MissingColumnsError) Unwrap() error {
	return apperrors.ErrMissingRequiredColumns
}

// MissingColumns returns the subset of RequiredColumns absent from headers,
// in RequiredColumns order. An empty result means the table is usable.
func MissingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// ValidateColumns checks headers against RequiredColumns and returns a
// *MissingColumnsError naming every absent column, or nil if all are present.
func ValidateColumns(headers []string) error {
	missing := MissingColumns(headers)
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
