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


// Package queue delivers file-processing jobs to the worker.
//
// A Source hands out raw job payloads one at a time; ParseJob turns a payload
// into a validated core.Job. Payloads are consumed exactly once: a payload
// that fails parsing or validation is dropped, never requeued.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/poiesic/docvec/core"
)

var (
	// ErrEmpty is returned by Pop when the wait times out with no job
	// available. It is the normal idle outcome, not a failure.
	ErrEmpty = errors.New("queue is empty")

	// ErrConnection is returned by Pop when the queue backend is
	// unreachable.
	ErrConnection = errors.New("queue connection failed")

	// ErrBadPayload is returned by ParseJob for payloads that are not
	// valid job JSON.
	ErrBadPayload = errors.New("malformed job payload")
)

// Source produces job payloads.
type Source interface {
	// Pop blocks up to the source's configured timeout for the next
	// payload. Returns ErrEmpty on timeout, ErrConnection when the
	// backend is unreachable and the context error when ctx ends.
	Pop(ctx context.Context) (string, error)
}

// ParseJob decodes and validates a job payload.
func ParseJob(payload string) (*core.Job, error) {
	var job core.Job
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	if err := core.ValidateJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}
