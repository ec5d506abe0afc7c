package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCaseNotFound is returned when a lookup, update, or delete targets a
	// case ID that does not exist. "Not found" is always distinct from a PIN
	// failure: callers must be able to tell the two apart.
	ErrCaseNotFound = errors.New("case not found")

	// ErrCaseIDTaken is returned when an INSERT collides with an existing
	// case ID. The uniqueness check is the primary-key constraint itself,
	// not a pre-check, so concurrent creation is safe; the service layer
	// reacts by generating a fresh ID and retrying.
	ErrCaseIDTaken = errors.New("case id already taken")

	// ErrCaseNotSaved is returned when a write completes without a driver
	// error but affects zero rows, meaning nothing was actually persisted.
	ErrCaseNotSaved = errors.New("case was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan case row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan case rows")
)
