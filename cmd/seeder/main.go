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


// The seeder enqueues file-processing jobs by hand, standing in for the
// backend during local development.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/docvec/core"
	"github.com/poiesic/docvec/queue"
)

func main() {
	app := &cli.App{
		Name:      "seeder",
		Usage:     "Push file-processing jobs onto the worker queue",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "redis-addr",
				Usage:   "Redis host:port carrying the job queue",
				Value:   "localhost:6379",
				EnvVars: []string{"REDIS_ADDR"},
			},
			&cli.StringFlag{
				Name:    "queue-key",
				Usage:   "Redis list to push jobs onto",
				Value:   queue.DefaultQueueKey,
				EnvVars: []string{"QUEUE_KEY"},
			},
		},
		Action: seedCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one file path is required")
	}

	client := redis.NewClient(&redis.Options{Addr: c.String("redis-addr")})
	defer client.Close()

	ctx := context.Background()
	key := c.String("queue-key")

	for _, path := range c.Args().Slice() {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		job := core.Job{
			ID:       uuid.NewString(),
			FileName: filepath.Base(abs),
			FilePath: abs,
		}
		payload, err := json.Marshal(job)
		if err != nil {
			return err
		}

		if err := client.LPush(ctx, key, payload).Err(); err != nil {
			return fmt.Errorf("failed to enqueue %s: %w", abs, err)
		}
		fmt.Printf("queued %s as job %s\n", job.FileName, job.ID)
	}

	return nil
}
