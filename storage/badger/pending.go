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


package badger

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/docvec/core"
	"github.com/poiesic/docvec/storage"
)

// PendingRepository implements storage.PendingRepository for BadgerDB.
type PendingRepository struct {
	backend *Backend
}

var _ storage.PendingRepository = (*PendingRepository)(nil)

// NewPendingRepository creates a new PendingRepository.
func NewPendingRepository(backend *Backend) (*PendingRepository, error) {
	if backend == nil {
		return nil, errors.New("backend is nil")
	}
	return &PendingRepository{backend: backend}, nil
}

// Close releases resources held by the repository. The underlying backend is
// owned by the caller and stays open.
func (r *PendingRepository) Close() error {
	return nil
}

// Add stores or replaces the pending entry for a job.
func (r *PendingRepository) Add(ctx context.Context, job *core.PendingJob) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePendingJobKey(job.JobID)
		if err := tx.Set(key, storage.MarshalPendingJob(job)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Get returns the pending entry for a job.
func (r *PendingRepository) Get(ctx context.Context, jobID string) (*core.PendingJob, error) {
	var job *core.PendingJob

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePendingJobKey(jobID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			job, err = storage.UnmarshalPendingJob(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return job, nil
}

// List returns all pending entries, ordered by JobID.
func (r *PendingRepository) List(ctx context.Context) ([]*core.PendingJob, error) {
	var jobs []*core.PendingJob

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(pendingJobPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				job, err := storage.UnmarshalPendingJob(val)
				if err != nil {
					return err
				}
				jobs = append(jobs, job)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Keys are hashed, so iteration order is not meaningful.
	slices.SortFunc(jobs, func(a, b *core.PendingJob) int {
		return strings.Compare(a.JobID, b.JobID)
	})
	return jobs, nil
}

// Remove deletes the pending entry for a job.
func (r *PendingRepository) Remove(ctx context.Context, jobID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makePendingJobKey(jobID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
