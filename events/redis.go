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


package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

// DefaultLogKey is the Redis list shared with the backend.
const DefaultLogKey = "application_logs"

// maxLogEntries caps the log list; older entries are trimmed away.
const maxLogEntries = 1000

// RedisSink appends events to a capped Redis list. The newest entry is at the
// head of the list.
type RedisSink struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedisSink creates a sink writing to the given list key. An empty key
// falls back to DefaultLogKey.
func NewRedisSink(client *redis.Client, key string) (*RedisSink, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if key == "" {
		key = DefaultLogKey
	}
	return &RedisSink{
		client: client,
		key:    key,
		logger: slog.Default().With("component", "event-sink"),
	}, nil
}

// Emit pushes the event onto the list and trims it to maxLogEntries. Failures
// are logged and swallowed.
func (s *RedisSink) Emit(ctx context.Context, e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		s.logger.Warn("failed to encode event", "event", e.Name, "err", err)
		return
	}

	if err := s.client.LPush(ctx, s.key, payload).Err(); err != nil {
		s.logger.Warn("failed to publish event", "event", e.Name, "err", err)
		return
	}
	if err := s.client.LTrim(ctx, s.key, 0, maxLogEntries-1).Err(); err != nil {
		s.logger.Warn("failed to trim event log", "key", s.key, "err", err)
	}
}
