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


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/docvec"
	"github.com/poiesic/docvec/ai"
)

func main() {
	app := &cli.App{
		Name:  "docvec",
		Usage: "Document ingestion worker for semantic search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Consume file-processing jobs until interrupted",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "redis-addr",
						Usage:   "Redis host:port carrying the job queue",
						Value:   "localhost:6379",
						EnvVars: []string{"REDIS_ADDR"},
					},
					&cli.StringFlag{
						Name:    "queue-key",
						Usage:   "Redis list to pop jobs from",
						Value:   "file_processing_queue",
						EnvVars: []string{"QUEUE_KEY"},
					},
					&cli.StringFlag{
						Name:    "log-key",
						Usage:   "Redis list for application events",
						Value:   "application_logs",
						EnvVars: []string{"LOG_KEY"},
					},
					&cli.StringFlag{
						Name:    "backend-url",
						Usage:   "Backend base URL for record mirroring (empty disables)",
						EnvVars: []string{"BACKEND_URL"},
					},
					&cli.StringFlag{
						Name:    "data-dir",
						Usage:   "Directory for re-embedding bookkeeping (empty keeps it in memory)",
						EnvVars: []string{"DATA_DIR"},
					},
					&cli.StringFlag{
						Name:    "embedding-provider",
						Usage:   "Embedding provider (ollama or openai)",
						Value:   ai.ProviderOllama,
						EnvVars: []string{"EMBEDDING_PROVIDER"},
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						Value:   "http://localhost:11434",
						EnvVars: []string{"OLLAMA_HOST"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						Value:   "nomic-embed-text",
						EnvVars: []string{"EMBEDDING_MODEL"},
					},
					&cli.IntFlag{
						Name:    "embedding-dimension",
						Usage:   "Width of placeholder vectors in degraded mode",
						Value:   768,
						EnvVars: []string{"EMBEDDING_DIMENSION"},
					},
					&cli.IntFlag{
						Name:    "chunk-size",
						Usage:   "Chunk window size in characters",
						Value:   1000,
						EnvVars: []string{"CHUNK_SIZE"},
					},
					&cli.IntFlag{
						Name:    "chunk-overlap",
						Usage:   "Characters shared between consecutive chunks",
						Value:   200,
						EnvVars: []string{"CHUNK_OVERLAP"},
					},
					&cli.IntFlag{
						Name:    "embed-concurrency",
						Usage:   "Chunks embedded in parallel per job",
						Value:   4,
						EnvVars: []string{"EMBED_CONCURRENCY"},
					},
					&cli.DurationFlag{
						Name:    "reembed-interval",
						Usage:   "Period of the degraded-record repair pass (0 disables)",
						Value:   10 * time.Minute,
						EnvVars: []string{"REEMBED_INTERVAL"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	cfg := docvec.DefaultConfig()
	cfg.RedisAddr = c.String("redis-addr")
	cfg.QueueKey = c.String("queue-key")
	cfg.LogKey = c.String("log-key")
	cfg.BackendURL = c.String("backend-url")
	cfg.DataDir = c.String("data-dir")
	cfg.ChunkSize = c.Int("chunk-size")
	cfg.ChunkOverlap = c.Int("chunk-overlap")
	cfg.EmbedConcurrency = c.Int("embed-concurrency")
	cfg.ReembedInterval = c.Duration("reembed-interval")
	cfg.AI = ai.NewConfig(
		ai.WithProvider(c.String("embedding-provider")),
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
		ai.WithDimension(c.Int("embedding-dimension")),
	)

	svc, err := docvec.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting worker",
		"redis", cfg.RedisAddr, "queue", cfg.QueueKey,
		"provider", cfg.AI.Provider, "model", cfg.AI.Model)

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
