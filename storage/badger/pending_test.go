package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docvec/core"
	"github.com/poiesic/docvec/storage"
)

func newTestRepo(t *testing.T) storage.PendingRepository {
	t.Helper()
	repo, backend, err := NewMemoryPendingRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func pending(jobID string, chunks int) *core.PendingJob {
	return &core.PendingJob{
		JobID:          jobID,
		FileName:       jobID + ".md",
		DegradedChunks: chunks,
		FirstSeen:      time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestPendingRepositoryRoundtrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in := pending("job-1", 4)
	require.NoError(t, repo.Add(ctx, in))

	out, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPendingRepositoryGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPendingRepositoryUpsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, pending("job-1", 4)))

	updated := pending("job-1", 4)
	updated.Attempts = 2
	require.NoError(t, repo.Add(ctx, updated))

	out, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Attempts)

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestPendingRepositoryListOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, pending("job-c", 1)))
	require.NoError(t, repo.Add(ctx, pending("job-a", 2)))
	require.NoError(t, repo.Add(ctx, pending("job-b", 3)))

	jobs, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, jobs, 3)
	assert.Equal(t, "job-a", jobs[0].JobID)
	assert.Equal(t, "job-b", jobs[1].JobID)
	assert.Equal(t, "job-c", jobs[2].JobID)
}

func TestPendingRepositoryRemove(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, pending("job-1", 1)))
	require.NoError(t, repo.Remove(ctx, "job-1"))

	_, err := repo.Get(ctx, "job-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Removing again is a no-op.
	assert.NoError(t, repo.Remove(ctx, "job-1"))
}
