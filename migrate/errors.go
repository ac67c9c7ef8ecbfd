package migrate

import "errors"

var (
	// ErrCatalogUnavailable means the forest suffix catalog could not be
	// read. Every eligibility decision depends on the catalog, so the run
	// aborts before processing any account.
	ErrCatalogUnavailable = errors.New("suffix catalog unavailable")

	// ErrAccountNotFound is reported by Directory.LookupAccount when the
	// batch names an account the directory does not hold. It is recorded
	// per account; the run continues.
	ErrAccountNotFound = errors.New("account not found")
)
