package apperrors

import "errors"

// Data source errors represent failures reaching or reading the remote
// spreadsheet source.
var (
	// ErrSourceUnavailable indicates that the remote worksheet could not be
	// fetched and no stored snapshot exists to fall back on.
	ErrSourceUnavailable = errors.New("spreadsheet source unavailable")

	// ErrSnapshotNotFound indicates that no stored snapshot exists for the
	// requested sheet URL and worksheet combination.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// Request errors represent invalid dashboard requests.
var (
	// ErrClientRequired indicates that the client query parameter is missing.
	ErrClientRequired = errors.New("client is required")

	// ErrUnknownWorksheet indicates that the requested worksheet is not one
	// of the configured worksheets.
	ErrUnknownWorksheet = errors.New("unknown worksheet")
)

// Data errors represent problems with the loaded table itself.
var (
	// ErrMissingRequiredColumns indicates that the loaded table lacks one or
	// more of the required named columns. The validation package wraps this
	// sentinel with the full list of missing names.
	ErrMissingRequiredColumns = errors.New("missing required columns")
)
