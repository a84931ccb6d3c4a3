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


package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/docvec/ai"
	"github.com/poiesic/docvec/document"
	"github.com/poiesic/docvec/events"
	"github.com/poiesic/docvec/queue"
	"github.com/poiesic/docvec/storage"
	"github.com/poiesic/docvec/store"
)

// Defaults for optional worker settings.
const (
	DefaultEmbedConcurrency  = 4
	DefaultHeartbeatInterval = 2 * time.Minute
	DefaultBackoffDelay      = 5 * time.Second
)

// Options configures a Worker. Source, Generator, Store and Sink are
// required; everything else has a default.
type Options struct {
	Source    queue.Source
	Generator *ai.Generator
	Store     *store.Store
	Sink      events.Sink

	// Pending tracks jobs with degraded embeddings for later repair.
	// When nil, degraded jobs are logged but not tracked.
	Pending storage.PendingRepository

	ChunkSize    int
	ChunkOverlap int

	// EmbedConcurrency bounds the number of chunks embedded in parallel
	// per job. 1 reproduces strictly sequential embedding.
	EmbedConcurrency int

	HeartbeatInterval time.Duration
	BackoffDelay      time.Duration
}

// Worker consumes jobs and turns documents into stored vector records.
type Worker struct {
	source    queue.Source
	extractor *document.Extractor
	chunker   *document.Chunker
	generator *ai.Generator
	store     *store.Store
	sink      events.Sink
	pending   storage.PendingRepository

	pool      *ants.Pool
	heartbeat time.Duration
	backoff   time.Duration
	logger    *slog.Logger
}

// New creates a Worker from the given options.
func New(opts Options) (*Worker, error) {
	if opts.Source == nil {
		return nil, ErrNilSource
	}
	if opts.Generator == nil {
		return nil, ErrNilGenerator
	}
	if opts.Store == nil {
		return nil, ErrNilStore
	}
	if opts.Sink == nil {
		return nil, ErrNilSink
	}

	if opts.ChunkSize == 0 {
		opts.ChunkSize = document.DefaultChunkSize
		if opts.ChunkOverlap == 0 {
			opts.ChunkOverlap = document.DefaultChunkOverlap
		}
	}
	chunker, err := document.NewChunker(opts.ChunkSize, opts.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	if opts.EmbedConcurrency <= 0 {
		opts.EmbedConcurrency = DefaultEmbedConcurrency
	}
	pool, err := ants.NewPool(opts.EmbedConcurrency)
	if err != nil {
		return nil, err
	}

	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if opts.BackoffDelay <= 0 {
		opts.BackoffDelay = DefaultBackoffDelay
	}

	return &Worker{
		source:    opts.Source,
		extractor: document.NewExtractor(),
		chunker:   chunker,
		generator: opts.Generator,
		store:     opts.Store,
		sink:      opts.Sink,
		pending:   opts.Pending,
		pool:      pool,
		heartbeat: opts.HeartbeatInterval,
		backoff:   opts.BackoffDelay,
		logger:    slog.Default().With("component", "worker"),
	}, nil
}

// Close releases the embedding pool. A closed worker must not be run again.
func (w *Worker) Close() error {
	w.pool.Release()
	return nil
}

// Run consumes jobs until ctx is canceled and returns the context's error.
// Job failures and queue outages never terminate the loop.
func (w *Worker) Run(ctx context.Context) error {
	started := events.New(events.LevelInfo, events.WorkerStarted)
	started.Message = "worker started and listening for jobs"
	w.sink.Emit(ctx, started)
	w.logger.Info("worker started")

	ticker := time.NewTicker(w.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			beat := events.New(events.LevelInfo, events.WorkerHeartbeat)
			beat.Message = "worker alive"
			w.sink.Emit(ctx, beat)
		default:
		}

		payload, err := w.source.Pop(ctx)
		switch {
		case err == nil:
			w.handlePayload(ctx, payload)
		case errors.Is(err, queue.ErrEmpty):
			// Normal idle timeout.
		case ctx.Err() != nil:
			w.logger.Info("worker stopping", "reason", ctx.Err())
			return ctx.Err()
		default:
			w.logger.Warn("queue unavailable, backing off",
				"delay", w.backoff, "err", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.backoff):
			}
		}
	}
}

// handlePayload parses one payload and processes the job it describes. The
// payload is consumed either way; bad payloads are reported, never requeued.
func (w *Worker) handlePayload(ctx context.Context, payload string) {
	job, err := queue.ParseJob(payload)
	if err != nil {
		w.logger.Error("dropping malformed job payload", "err", err)
		e := events.New(events.LevelError, events.JobPayloadInvalid)
		e.Message = "job payload could not be parsed"
		e.Error = err.Error()
		w.sink.Emit(ctx, e)
		return
	}

	w.processJob(ctx, job)
}
