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


package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultQueueKey is the Redis list the backend pushes jobs onto.
const DefaultQueueKey = "file_processing_queue"

// DefaultPopTimeout bounds a single blocking pop. Short enough that the
// worker notices shutdown and emits heartbeats promptly.
const DefaultPopTimeout = 10 * time.Second

// RedisSource pops jobs from a Redis list with BRPOP.
type RedisSource struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisSource creates a source reading from the given list key. An empty
// key falls back to DefaultQueueKey; a non-positive timeout falls back to
// DefaultPopTimeout.
func NewRedisSource(client *redis.Client, key string, timeout time.Duration) (*RedisSource, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if key == "" {
		key = DefaultQueueKey
	}
	if timeout <= 0 {
		timeout = DefaultPopTimeout
	}
	return &RedisSource{client: client, key: key, timeout: timeout}, nil
}

// Pop blocks up to the configured timeout for the next payload.
func (s *RedisSource) Pop(ctx context.Context) (string, error) {
	reply, err := s.client.BRPop(ctx, s.timeout, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrEmpty
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// BRPOP replies with the key name followed by the popped value.
	if len(reply) != 2 {
		return "", fmt.Errorf("%w: unexpected BRPOP reply of %d elements", ErrConnection, len(reply))
	}
	return reply[1], nil
}
