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


package storage

import (
	"context"

	"github.com/poiesic/docvec/core"
)

// PendingRepository tracks jobs waiting for re-embedding.
// Implementations must be safe for concurrent use.
type PendingRepository interface {
	// Add stores or replaces the pending entry for a job.
	Add(ctx context.Context, job *core.PendingJob) error

	// Get returns the pending entry for a job.
	// Returns ErrNotFound if no entry exists.
	Get(ctx context.Context, jobID string) (*core.PendingJob, error)

	// List returns all pending entries, ordered by JobID.
	List(ctx context.Context) ([]*core.PendingJob, error)

	// Remove deletes the pending entry for a job. Removing an absent
	// entry is not an error.
	Remove(ctx context.Context, jobID string) error

	// Close releases resources held by the repository.
	Close() error
}
