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


package reembed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/docvec/ai"
	"github.com/poiesic/docvec/core"
	"github.com/poiesic/docvec/storage"
	"github.com/poiesic/docvec/store"
)

// Config holds configuration for a re-embedding pass.
type Config struct {
	// MaxRetries is the maximum number of retry attempts per chunk.
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff.
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

// Reembedder repairs jobs whose records carry degraded embeddings.
type Reembedder struct {
	pending  storage.PendingRepository
	store    *store.Store
	embedder ai.Embedder
	config   *Config
	logger   *slog.Logger
}

// NewReembedder creates a new reembedder. A nil config uses DefaultConfig.
func NewReembedder(pending storage.PendingRepository, st *store.Store, embedder ai.Embedder, config *Config) (*Reembedder, error) {
	if pending == nil {
		return nil, ErrNilPending
	}
	if st == nil {
		return nil, ErrNilStore
	}
	if embedder == nil {
		return nil, ErrNilEmbedder
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &Reembedder{
		pending:  pending,
		store:    st,
		embedder: embedder,
		config:   config,
		logger:   slog.Default().With("component", "reembedder"),
	}, nil
}

// Run executes one re-embedding pass over all pending jobs and returns the
// number of jobs repaired. When the provider is still unavailable, the pass
// stops at the first failed job and returns its error; the failed job's
// attempt count is persisted so the age of the outage stays visible.
func (r *Reembedder) Run(ctx context.Context) (int, error) {
	jobs, err := r.pending.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending jobs: %w", err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	r.logger.Info("re-embedding pass started", "pending", len(jobs))

	repaired := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			return repaired, ctx.Err()
		}

		if err := r.repairJob(ctx, job); err != nil {
			r.recordFailure(ctx, job)
			return repaired, fmt.Errorf("repair job %s: %w", job.JobID, err)
		}
		repaired++
	}

	r.logger.Info("re-embedding pass finished", "repaired", repaired)
	return repaired, nil
}

// repairJob re-embeds the degraded records of one job and swaps the repaired
// set into the store.
func (r *Reembedder) repairJob(ctx context.Context, job *core.PendingJob) error {
	records := r.store.ListByJob(job.JobID)
	if len(records) == 0 {
		// The store restarted since this entry was written; there is
		// nothing left to repair.
		r.logger.Warn("dropping stale pending entry", "job", job.JobID)
		return r.pending.Remove(ctx, job.JobID)
	}

	replacement := make([]*core.VectorRecord, 0, len(records))
	repairedChunks := 0
	for _, rec := range records {
		if !rec.Metadata.Degraded {
			replacement = append(replacement, rec)
			continue
		}

		var vector []float32
		err := RetryWithBackoff(ctx, r.config, func() error {
			v, embedErr := r.embedder.EmbedText(ctx, rec.Document)
			if embedErr != nil {
				return embedErr
			}
			if len(v) == 0 {
				return errors.New("provider returned an empty embedding")
			}
			vector = v
			return nil
		})
		if err != nil {
			return err
		}

		repaired := *rec
		repaired.Embedding = vector
		repaired.Metadata.Degraded = false
		repaired.Metadata.DegradedReason = ""
		replacement = append(replacement, &repaired)
		repairedChunks++
	}

	if err := r.store.ReplaceJob(ctx, job.JobID, replacement); err != nil {
		return err
	}

	r.logger.Info("job repaired", "job", job.JobID, "chunks", repairedChunks)
	return r.pending.Remove(ctx, job.JobID)
}

// recordFailure bumps the attempt counter on a pending entry after a failed
// repair.
func (r *Reembedder) recordFailure(ctx context.Context, job *core.PendingJob) {
	job.Attempts++
	if err := r.pending.Add(ctx, job); err != nil {
		r.logger.Error("failed to update pending entry", "job", job.JobID, "err", err)
	}
}
