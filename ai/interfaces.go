package ai

import "context"

// CriteriaExtractor turns a free-text investment query into a raw
// structured-criteria payload.
// Implementations must be thread-safe for concurrent use.
type CriteriaExtractor interface {
	// ExtractCriteria sends the query to the semantic-analysis model
	// and returns the raw criteria payload it produced, expected to be
	// a JSON object with snake-case keys (sectors, fees_max, ...).
	// The payload is returned as-is: coercion and fail-soft handling
	// of malformed bodies belong to the criteria normalizer. An error
	// is returned only when the service itself is unreachable or
	// failed to respond.
	ExtractCriteria(ctx context.Context, query string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// CriteriaExtractor returns the criteria extraction service.
	// The returned CriteriaExtractor is safe for concurrent use.
	CriteriaExtractor() CriteriaExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
