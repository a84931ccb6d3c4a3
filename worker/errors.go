package worker

import "errors"

var (
	// ErrNilSource is returned when a Worker is constructed without a job
	// source.
	ErrNilSource = errors.New("job source is nil")

	// ErrNilGenerator is returned when a Worker is constructed without an
	// embedding generator.
	ErrNilGenerator = errors.New("embedding generator is nil")

	// ErrNilStore is returned when a Worker is constructed without a
	// vector store.
	ErrNilStore = errors.New("vector store is nil")

	// ErrNilSink is returned when a Worker is constructed without an
	// event sink.
	ErrNilSink = errors.New("event sink is nil")
)
