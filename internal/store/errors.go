package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncEntryNotFound is returned when an exact-match ledger lookup by
	// (owner_id, client_id, record_type) produces no row.
	ErrSyncEntryNotFound = errors.New("sync log entry was not found")

	// ErrDuplicateSyncEntry is returned when committing a ledger entry
	// violates the unique (owner_id, client_id, record_type) constraint,
	// meaning a concurrent push already recorded the same submission. The
	// push coordinator recovers by re-reading the winning entry; this error
	// is never surfaced to clients.
	ErrDuplicateSyncEntry = errors.New("sync log entry already exists")

	// ErrFarmNotFound is returned when a query or insert references a farm
	// (identified by id and owner_id) that does not exist or belongs to a
	// different owner.
	ErrFarmNotFound = errors.New("farm was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
