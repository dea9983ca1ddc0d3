package search

import "errors"

var (
	// ErrCatalogRepositoryRequired is returned when a Searcher is
	// constructed without a catalog repository.
	ErrCatalogRepositoryRequired = errors.New("catalog repository is required")

	// ErrAIProviderRequired is returned when a Searcher is constructed
	// without an AI provider.
	ErrAIProviderRequired = errors.New("AI provider is required")

	// ErrSemanticUnavailable indicates the criteria extraction service
	// could not be reached. It is distinct from an empty result set,
	// which is a successful search that matched nothing.
	ErrSemanticUnavailable = errors.New("semantic search unavailable")
)
