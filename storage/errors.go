package storage

import "errors"

var (
	// ErrETFNotFound is returned when a requested record does not
	// exist in the catalog.
	ErrETFNotFound = errors.New("ETF not found")

	// ErrETFExists is returned when adding a record whose ISIN is
	// already in the catalog.
	ErrETFExists = errors.New("ETF already exists")

	// ErrInvalidETF is returned when a record cannot be stored, for
	// example because it has no ISIN to derive an ID from.
	ErrInvalidETF = errors.New("invalid ETF record")

	// ErrDatabaseClosed is returned for operations on a closed
	// repository.
	ErrDatabaseClosed = errors.New("database is closed")
)
