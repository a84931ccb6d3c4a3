package search

import (
	"context"
	"time"
)

// SearchMonitor observes completed searches. Implementations must be safe
// for concurrent use.
type SearchMonitor interface {
	// SearchCompleted is called after every successful search.
	SearchCompleted(ctx context.Context, query string, results int, elapsed time.Duration)
}

// noopMonitor is the default monitor; it ignores everything.
type noopMonitor struct{}

func (noopMonitor) SearchCompleted(ctx context.Context, query string, results int, elapsed time.Duration) {
}
