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


// Package docvec assembles the document ingestion worker: a Redis job queue,
// PDF/Markdown extraction, chunking, embedding with a degraded-mode fallback,
// an in-memory vector store with an optional backend mirror, and a periodic
// re-embedding pass that repairs degraded records.
package docvec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/poiesic/docvec/ai"
	"github.com/poiesic/docvec/ai/ollama"
	"github.com/poiesic/docvec/ai/openai"
	"github.com/poiesic/docvec/core"
	"github.com/poiesic/docvec/document"
	"github.com/poiesic/docvec/events"
	"github.com/poiesic/docvec/queue"
	"github.com/poiesic/docvec/reembed"
	"github.com/poiesic/docvec/search"
	"github.com/poiesic/docvec/storage"
	badgerstore "github.com/poiesic/docvec/storage/badger"
	"github.com/poiesic/docvec/store"
	"github.com/poiesic/docvec/worker"
)

// DefaultReembedInterval is how often the re-embedding pass runs.
const DefaultReembedInterval = 10 * time.Minute

// Config holds the settings for a complete worker service.
type Config struct {
	// RedisAddr is the host:port of the Redis instance carrying the job
	// queue and the application log.
	RedisAddr string

	// QueueKey is the Redis list jobs are popped from.
	QueueKey string

	// LogKey is the Redis list application events are pushed onto.
	LogKey string

	// PopTimeout bounds a single blocking queue pop.
	PopTimeout time.Duration

	// BackendURL is the base URL of the backend that mirrors inserted
	// records. Empty disables mirroring.
	BackendURL string

	// DataDir is where re-embedding bookkeeping is persisted.
	// Empty keeps it in memory.
	DataDir string

	// AI configures the embedding provider.
	AI *ai.Config

	ChunkSize    int
	ChunkOverlap int

	EmbedConcurrency  int
	HeartbeatInterval time.Duration
	BackoffDelay      time.Duration

	// ReembedInterval is the period of the repair pass. Zero or negative
	// disables it.
	ReembedInterval time.Duration

	// Reembed tunes retries within a repair pass. Nil uses the package
	// defaults.
	Reembed *reembed.Config
}

// DefaultConfig returns a Config for a local Redis and Ollama setup.
func DefaultConfig() *Config {
	return &Config{
		RedisAddr:         "localhost:6379",
		QueueKey:          queue.DefaultQueueKey,
		LogKey:            events.DefaultLogKey,
		PopTimeout:        queue.DefaultPopTimeout,
		AI:                ai.DefaultConfig(),
		ChunkSize:         document.DefaultChunkSize,
		ChunkOverlap:      document.DefaultChunkOverlap,
		EmbedConcurrency:  worker.DefaultEmbedConcurrency,
		HeartbeatInterval: worker.DefaultHeartbeatInterval,
		BackoffDelay:      worker.DefaultBackoffDelay,
		ReembedInterval:   DefaultReembedInterval,
	}
}

// Validate checks that the configuration can produce a working service.
func (c *Config) Validate() error {
	if c.RedisAddr == "" {
		return errors.New("docvec config: RedisAddr is required")
	}
	if c.AI == nil {
		return errors.New("docvec config: AI configuration is required")
	}
	if err := c.AI.Validate(); err != nil {
		return err
	}
	return core.ValidateChunkParams(c.ChunkSize, c.ChunkOverlap)
}

// Service bundles the worker with its queue, store, storage and search
// surfaces, sharing one set of connections.
type Service struct {
	cfg *Config

	redis   *redis.Client
	backend *badgerstore.Backend
	pending storage.PendingRepository

	store      *store.Store
	worker     *worker.Worker
	reembedder *reembed.Reembedder
	searcher   *search.Searcher

	logger *slog.Logger
}

// New builds a Service from the configuration. No network connections are
// made until Run.
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	source, err := queue.NewRedisSource(client, cfg.QueueKey, cfg.PopTimeout)
	if err != nil {
		client.Close()
		return nil, err
	}
	sink, err := events.NewRedisSink(client, cfg.LogKey)
	if err != nil {
		client.Close()
		return nil, err
	}

	embedder, err := newEmbedder(cfg.AI)
	if err != nil {
		client.Close()
		return nil, err
	}
	generator, err := ai.NewGenerator(embedder, cfg.AI.Dimension)
	if err != nil {
		client.Close()
		return nil, err
	}

	var storeOpts []store.Option
	if cfg.BackendURL != "" {
		mirror, err := store.NewHTTPMirror(cfg.BackendURL)
		if err != nil {
			client.Close()
			return nil, err
		}
		storeOpts = append(storeOpts, store.WithMirror(mirror))
	}
	st := store.New(storeOpts...)

	backend, err := badgerstore.OpenBackend(cfg.DataDir, cfg.DataDir == "")
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("open pending storage: %w", err)
	}
	pending, err := badgerstore.NewPendingRepository(backend)
	if err != nil {
		backend.Close()
		client.Close()
		return nil, err
	}

	w, err := worker.New(worker.Options{
		Source:            source,
		Generator:         generator,
		Store:             st,
		Sink:              sink,
		Pending:           pending,
		ChunkSize:         cfg.ChunkSize,
		ChunkOverlap:      cfg.ChunkOverlap,
		EmbedConcurrency:  cfg.EmbedConcurrency,
		HeartbeatInterval: cfg.HeartbeatInterval,
		BackoffDelay:      cfg.BackoffDelay,
	})
	if err != nil {
		pending.Close()
		backend.Close()
		client.Close()
		return nil, err
	}

	reembedder, err := reembed.NewReembedder(pending, st, embedder, cfg.Reembed)
	if err != nil {
		w.Close()
		pending.Close()
		backend.Close()
		client.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(st, embedder)
	if err != nil {
		w.Close()
		pending.Close()
		backend.Close()
		client.Close()
		return nil, err
	}

	return &Service{
		cfg:        cfg,
		redis:      client,
		backend:    backend,
		pending:    pending,
		store:      st,
		worker:     w,
		reembedder: reembedder,
		searcher:   searcher,
		logger:     slog.Default().With("component", "service"),
	}, nil
}

// newEmbedder picks the embedding implementation named by the configuration.
func newEmbedder(cfg *ai.Config) (ai.Embedder, error) {
	switch cfg.Provider {
	case ai.ProviderOllama:
		return ollama.NewEmbedder(cfg)
	case ai.ProviderOpenAI:
		return openai.NewEmbedder(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ai.ErrUnknownProvider, cfg.Provider)
	}
}

// Run starts the ingestion loop and, when configured, the periodic
// re-embedding pass. It blocks until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.ReembedInterval > 0 {
		go s.reembedLoop(ctx)
	}
	return s.worker.Run(ctx)
}

func (s *Service) reembedLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.ReembedInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			repaired, err := s.reembedder.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn("re-embedding pass incomplete",
					"repaired", repaired, "err", err)
			}
		}
	}
}

// Searcher returns the query surface over the service's store.
func (s *Service) Searcher() *search.Searcher {
	return s.searcher
}

// Store returns the service's vector store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Stats reports the current state of the vector store.
func (s *Service) Stats() store.Stats {
	return s.store.Stats()
}

// Close releases every resource the service holds. Call after Run returns.
func (s *Service) Close() error {
	return errors.Join(
		s.worker.Close(),
		s.pending.Close(),
		s.backend.Close(),
		s.redis.Close(),
	)
}
