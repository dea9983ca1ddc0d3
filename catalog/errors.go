package catalog

import "errors"

var (
	// ErrCatalogRepositoryRequired is returned when a Pipeline is
	// constructed without a catalog repository.
	ErrCatalogRepositoryRequired = errors.New("catalog repository is required")

	// ErrUnsupportedFormat is returned when a catalog file has an
	// extension the loader does not understand.
	ErrUnsupportedFormat = errors.New("unsupported catalog file format")

	// ErrNoSymbol is returned when enriching a record that has no
	// market symbol to look up.
	ErrNoSymbol = errors.New("ETF has no market symbol")

	// ErrInvalidMaxAttempts is returned when a retry is requested with
	// a non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
