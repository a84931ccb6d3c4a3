package search

import "errors"

var (
	// ErrNilStore is returned when a Searcher is constructed without a
	// vector store.
	ErrNilStore = errors.New("vector store is nil")

	// ErrNilEmbedder is returned when a Searcher is constructed without
	// an embedder.
	ErrNilEmbedder = errors.New("embedder is nil")

	// ErrEmptyQuery is returned for queries with no content.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrQueryEmbedding is returned when the query text could not be
	// embedded. Queries have no degraded fallback; a placeholder query
	// vector would silently return noise.
	ErrQueryEmbedding = errors.New("failed to embed query")
)
