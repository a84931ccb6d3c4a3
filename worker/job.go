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
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/poiesic/docvec/ai"
	"github.com/poiesic/docvec/core"
	"github.com/poiesic/docvec/document"
	"github.com/poiesic/docvec/events"
	"github.com/poiesic/docvec/storage"
)

// processJob runs one job through the full pipeline. A panic anywhere in the
// pipeline is contained to this job.
func (w *Worker) processJob(ctx context.Context, job *core.Job) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("panic while processing job", "job", job.ID, "panic", r)
			e := w.fileEvent(events.LevelError, events.FileProcessingError, job)
			e.Message = "unexpected failure while processing file"
			e.Error = fmt.Sprintf("panic: %v", r)
			w.sink.Emit(ctx, e)
		}
	}()

	start := time.Now()
	w.logger.Info("processing job", "job", job.ID, "file", job.FileName)

	if !document.SupportedType(job.FileName) {
		w.logger.Warn("unsupported file type", "job", job.ID, "file", job.FileName)
		e := w.fileEvent(events.LevelWarning, events.FileTypeUnsupported, job)
		e.Message = "file type is not supported"
		w.sink.Emit(ctx, e)
		return
	}

	info, err := os.Stat(job.FilePath)
	if err != nil {
		w.logger.Error("file not found", "job", job.ID, "path", job.FilePath, "err", err)
		e := w.fileEvent(events.LevelError, events.FileNotFound, job)
		e.Message = "file does not exist or is not readable"
		e.Error = err.Error()
		w.sink.Emit(ctx, e)
		return
	}

	text, err := w.extractor.Extract(job.FilePath)
	if err != nil {
		w.logger.Warn("extraction failed", "job", job.ID, "file", job.FileName, "err", err)
		e := w.fileEvent(events.LevelWarning, events.FileProcessingFailed, job)
		e.Message = "text extraction failed"
		e.Error = err.Error()
		e.FileSize = info.Size()
		w.sink.Emit(ctx, e)
		return
	}

	chunks := w.chunker.Split(text)
	if len(chunks) == 0 {
		w.logger.Warn("no text content extracted", "job", job.ID, "file", job.FileName)
		e := w.fileEvent(events.LevelWarning, events.FileProcessingFailed, job)
		e.Message = "no text content extracted from file"
		e.FileSize = info.Size()
		w.sink.Emit(ctx, e)
		return
	}

	embeddings := w.embedChunks(ctx, chunks)

	degraded := 0
	for i, chunk := range chunks {
		emb := embeddings[i]
		rec := core.NewVectorRecord(job, chunk, emb.Vector)
		if emb.Degraded {
			degraded++
			rec.Metadata.Degraded = true
			rec.Metadata.DegradedReason = emb.Reason
		}
		if err := w.store.Insert(ctx, rec); err != nil {
			w.logger.Error("failed to insert record", "record", rec.ID, "err", err)
		}
	}

	if degraded > 0 {
		w.logger.Warn("job stored with degraded embeddings",
			"job", job.ID, "degraded", degraded, "chunks", len(chunks))
		w.registerPending(ctx, job, degraded)
	}

	e := w.fileEvent(events.LevelInfo, events.FileProcessingCompleted, job)
	e.Message = fmt.Sprintf("processed %d chunks", len(chunks))
	e.FileSize = info.Size()
	e.Details = fmt.Sprintf("Job ID: %s, Chunks: %d, File Size: %d bytes",
		job.ID, len(chunks), info.Size())
	if degraded > 0 {
		e.Details += fmt.Sprintf(", Degraded Chunks: %d", degraded)
	}
	w.sink.Emit(ctx, e)
	w.logger.Info("job completed",
		"job", job.ID, "chunks", len(chunks), "degraded", degraded,
		"duration", time.Since(start))
}

// embedChunks fans chunk embedding out over the worker pool. The result slice
// is index-aligned with chunks, so records keep their chunk order regardless
// of embedding completion order.
func (w *Worker) embedChunks(ctx context.Context, chunks []core.Chunk) []ai.Embedding {
	results := make([]ai.Embedding, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		if err := w.pool.Submit(func() {
			defer wg.Done()
			results[i] = w.generator.Generate(ctx, chunk.Text)
		}); err != nil {
			// Pool rejected the task; embed on this goroutine instead.
			results[i] = w.generator.Generate(ctx, chunk.Text)
			wg.Done()
		}
	}
	wg.Wait()

	return results
}

// registerPending records the job for re-embedding. An existing entry keeps
// its first-seen time and attempt count.
func (w *Worker) registerPending(ctx context.Context, job *core.Job, degraded int) {
	if w.pending == nil {
		return
	}

	entry := &core.PendingJob{
		JobID:          job.ID,
		FileName:       job.FileName,
		DegradedChunks: degraded,
		FirstSeen:      time.Now().UTC(),
	}

	existing, err := w.pending.Get(ctx, job.ID)
	switch {
	case err == nil:
		entry.FirstSeen = existing.FirstSeen
		entry.Attempts = existing.Attempts
	case !errors.Is(err, storage.ErrNotFound):
		w.logger.Error("failed to read pending entry", "job", job.ID, "err", err)
	}

	if err := w.pending.Add(ctx, entry); err != nil {
		w.logger.Error("failed to register pending job", "job", job.ID, "err", err)
	}
}

func (w *Worker) fileEvent(level, name string, job *core.Job) events.Event {
	e := events.New(level, name)
	e.FileName = job.FileName
	e.FilePath = job.FilePath
	return e
}
