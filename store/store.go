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


package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/poiesic/docvec/core"
)

// CollectionName identifies the single record collection this store serves.
const CollectionName = "documents"

// Match pairs a stored record with its distance to a query vector.
type Match struct {
	Record   *core.VectorRecord
	Distance float64
}

// Stats describes the current state of the store.
type Stats struct {
	Collection string `json:"collection"`
	Instance   string `json:"instance"`
	Count      int    `json:"count"`
}

// Store is an in-memory, append-only vector store. All methods are safe for
// concurrent use. Contents live and die with the process.
type Store struct {
	mu      sync.RWMutex
	records []*core.VectorRecord

	instance string
	mirror   Mirror
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithMirror attaches a mirror that receives a copy of every inserted record.
func WithMirror(m Mirror) Option {
	return func(s *Store) {
		s.mirror = m
	}
}

// New creates an empty store. Each store carries a unique instance ID so that
// restarts are visible in stats output.
func New(opts ...Option) *Store {
	s := &Store{
		instance: uuid.NewString(),
		logger:   slog.Default().With("component", "vector-store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert appends a record to the store and forwards it to the mirror when one
// is configured. A mirror failure is logged and does not affect the insert.
func (s *Store) Insert(ctx context.Context, rec *core.VectorRecord) error {
	if rec == nil {
		return ErrNilRecord
	}
	if rec.ID == "" {
		return ErrEmptyRecordID
	}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	s.publish(ctx, rec)
	return nil
}

// Query returns the k records nearest to the given embedding, ordered by
// ascending L2 distance. Fewer than k matches are returned when the store
// holds fewer records. A non-positive k yields no matches.
func (s *Store) Query(embedding []float32, k int) []Match {
	if k <= 0 {
		return nil
	}

	s.mu.RLock()
	matches := make([]Match, len(s.records))
	for i, rec := range s.records {
		matches[i] = Match{Record: rec, Distance: L2Distance(embedding, rec.Embedding)}
	}
	s.mu.RUnlock()

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches
}

// DeleteByJob removes every record belonging to the given job. It reports
// whether any record was removed.
func (s *Store) DeleteByJob(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteByJobLocked(jobID)
}

// ReplaceJob atomically swaps a job's records for a new set, then mirrors the
// new records. Queries never observe the job partially replaced.
func (s *Store) ReplaceJob(ctx context.Context, jobID string, records []*core.VectorRecord) error {
	for _, rec := range records {
		if rec == nil {
			return ErrNilRecord
		}
		if rec.ID == "" {
			return ErrEmptyRecordID
		}
	}

	s.mu.Lock()
	s.deleteByJobLocked(jobID)
	s.records = append(s.records, records...)
	s.mu.Unlock()

	for _, rec := range records {
		s.publish(ctx, rec)
	}
	return nil
}

func (s *Store) deleteByJobLocked(jobID string) bool {
	kept := s.records[:0]
	removed := false
	for _, rec := range s.records {
		if rec.Metadata.JobID == jobID {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	for i := len(kept); i < len(s.records); i++ {
		s.records[i] = nil
	}
	s.records = kept
	return removed
}

// ListByJob returns the records of a job ordered by chunk index.
func (s *Store) ListByJob(jobID string) []*core.VectorRecord {
	return s.list(func(rec *core.VectorRecord) bool {
		return rec.Metadata.JobID == jobID
	})
}

// ListByFile returns the records of a file ordered by chunk index. Records
// from different jobs that processed the same file name are all included.
func (s *Store) ListByFile(fileName string) []*core.VectorRecord {
	return s.list(func(rec *core.VectorRecord) bool {
		return rec.Metadata.FileName == fileName
	})
}

func (s *Store) list(keep func(*core.VectorRecord) bool) []*core.VectorRecord {
	s.mu.RLock()
	var out []*core.VectorRecord
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metadata.ChunkIndex < out[j].Metadata.ChunkIndex
	})
	return out
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Stats returns the store's collection name, instance ID and record count.
func (s *Store) Stats() Stats {
	return Stats{
		Collection: CollectionName,
		Instance:   s.instance,
		Count:      s.Count(),
	}
}

func (s *Store) publish(ctx context.Context, rec *core.VectorRecord) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Publish(ctx, rec); err != nil {
		s.logger.Warn("mirror publish failed", "record", rec.ID, "err", err)
	}
}
