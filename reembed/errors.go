package reembed

import "errors"

var (
	// ErrInvalidMaxAttempts indicates a retry budget of zero or less.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNilPending is returned when a Reembedder is constructed without
	// a pending repository.
	ErrNilPending = errors.New("pending repository is nil")

	// ErrNilStore is returned when a Reembedder is constructed without a
	// vector store.
	ErrNilStore = errors.New("vector store is nil")

	// ErrNilEmbedder is returned when a Reembedder is constructed without
	// an embedder.
	ErrNilEmbedder = errors.New("embedder is nil")
)
