// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package search answers semantic queries against the in-process vector
// store.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/docvec/ai"
	"github.com/poiesic/docvec/store"
)

// DefaultLimit is the number of matches returned when the caller does not
// ask for a specific count.
const DefaultLimit = 5

// Searcher embeds query text and finds the nearest stored records. Unlike
// ingestion, a query that cannot be embedded fails outright.
type Searcher struct {
	store    *store.Store
	embedder ai.Embedder
	monitor  SearchMonitor
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMonitor attaches a monitor that observes completed searches.
func WithMonitor(m SearchMonitor) Option {
	return func(s *Searcher) {
		s.monitor = m
	}
}

// NewSearcher creates a Searcher over the given store and embedder.
func NewSearcher(st *store.Store, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if st == nil {
		return nil, ErrNilStore
	}
	if embedder == nil {
		return nil, ErrNilEmbedder
	}

	s := &Searcher{
		store:    st,
		embedder: embedder,
		monitor:  noopMonitor{},
		logger:   slog.Default().With("component", "searcher"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search returns the limit nearest records to the query text, ordered by
// ascending distance. A non-positive limit uses DefaultLimit.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]store.Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := time.Now()
	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("query embedding failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrQueryEmbedding, err)
	}

	matches := s.store.Query(vector, limit)
	s.monitor.SearchCompleted(ctx, query, len(matches), time.Since(start))

	s.logger.Debug("search completed",
		"results", len(matches), "limit", limit, "duration", time.Since(start))
	return matches, nil
}
