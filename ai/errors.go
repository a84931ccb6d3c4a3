package ai

import "errors"

var (
	// ErrNilEmbedder is returned when a Generator is constructed without
	// an embedder.
	ErrNilEmbedder = errors.New("embedder is nil")

	// ErrInvalidDimension is returned when the configured embedding width
	// is not positive.
	ErrInvalidDimension = errors.New("embedding dimension must be positive")

	// ErrUnknownProvider is returned when the configured provider name
	// matches no implementation.
	ErrUnknownProvider = errors.New("unknown embedding provider")
)
