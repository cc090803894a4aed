package store

import "errors"

// Sentinel errors returned by the repositories. Handlers match against
// them with [errors.Is] to pick the HTTP status.
var (
	// ErrCommentNotFound is returned when no comment row matches the
	// requested id.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrReferenceNotFound is returned when no reference row matches the
	// requested id.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrBuildingSQLQuery indicates the query builder failed before any
	// statement reached the database.
	ErrBuildingSQLQuery = errors.New("error building SQL query")

	// ErrExecutingQuery indicates a driver-level failure while executing
	// a statement (connectivity, constraint violation, bad SQL).
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow indicates a failure while scanning a single result
	// row into a model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows indicates a failure while iterating a result set.
	ErrScanningRows = errors.New("error scanning rows")
)
