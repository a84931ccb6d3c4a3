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


package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docvec/core"
)

func newRecord(jobID, fileName string, chunkIndex int, embedding []float32) *core.VectorRecord {
	job := &core.Job{ID: jobID, FileName: fileName, FilePath: "/data/" + fileName}
	chunk := core.Chunk{Index: chunkIndex, Text: "chunk text", Size: 10}
	return core.NewVectorRecord(job, chunk, embedding)
}

func TestL2Distance(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		d := L2Distance([]float32{0, 0}, []float32{3, 4})
		assert.InDelta(t, 5.0, d, 1e-9)
	})

	t.Run("identical vectors", func(t *testing.T) {
		assert.Zero(t, L2Distance([]float32{1, 2, 3}, []float32{1, 2, 3}))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []float32{0.1, 0.9, 0.4}
		b := []float32{0.7, 0.2, 0.5}
		assert.Equal(t, L2Distance(a, b), L2Distance(b, a))
	})

	t.Run("dimension mismatch is infinite", func(t *testing.T) {
		assert.True(t, math.IsInf(L2Distance([]float32{1}, []float32{1, 2}), 1))
	})
}

func TestInsertValidation(t *testing.T) {
	s := New()
	ctx := context.Background()

	assert.ErrorIs(t, s.Insert(ctx, nil), ErrNilRecord)
	assert.ErrorIs(t, s.Insert(ctx, &core.VectorRecord{}), ErrEmptyRecordID)
	assert.Zero(t, s.Count())
}

func TestQueryNearest(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 0, []float32{0, 0})))
	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 1, []float32{3, 4})))
	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 2, []float32{1, 1})))

	matches := s.Query([]float32{0, 0}, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "j1_0", matches[0].Record.ID)
	assert.Zero(t, matches[0].Distance)
	assert.Equal(t, "j1_2", matches[1].Record.ID)
	assert.InDelta(t, math.Sqrt2, matches[1].Distance, 1e-9)
}

func TestQueryBounds(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 0, []float32{1, 1})))

	t.Run("k larger than store", func(t *testing.T) {
		assert.Len(t, s.Query([]float32{0, 0}, 10), 1)
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Empty(t, s.Query([]float32{0, 0}, 0))
		assert.Empty(t, s.Query([]float32{0, 0}, -1))
	})

	t.Run("empty store", func(t *testing.T) {
		assert.Empty(t, New().Query([]float32{0, 0}, 5))
	})
}

func TestQueryDimensionMismatchSortsLast(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, newRecord("wide", "a.md", 0, []float32{9, 9, 9})))
	require.NoError(t, s.Insert(ctx, newRecord("flat", "a.md", 0, []float32{5, 5})))

	matches := s.Query([]float32{0, 0}, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "flat_0", matches[0].Record.ID)
	assert.True(t, math.IsInf(matches[1].Distance, 1))
}

func TestDeleteByJob(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 0, []float32{1})))
	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 1, []float32{2})))
	require.NoError(t, s.Insert(ctx, newRecord("j2", "b.md", 0, []float32{3})))

	assert.True(t, s.DeleteByJob("j1"))
	assert.Equal(t, 1, s.Count())
	assert.Empty(t, s.ListByJob("j1"))

	assert.False(t, s.DeleteByJob("j1"))
	assert.False(t, s.DeleteByJob("missing"))
}

func TestReplaceJob(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 0, []float32{1})))
	require.NoError(t, s.Insert(ctx, newRecord("j2", "b.md", 0, []float32{2})))

	replacement := []*core.VectorRecord{
		newRecord("j1", "a.md", 0, []float32{10}),
		newRecord("j1", "a.md", 1, []float32{11}),
	}
	require.NoError(t, s.ReplaceJob(ctx, "j1", replacement))

	assert.Equal(t, 3, s.Count())
	records := s.ListByJob("j1")
	require.Len(t, records, 2)
	assert.Equal(t, []float32{10}, records[0].Embedding)
	assert.Equal(t, []float32{11}, records[1].Embedding)
	assert.Len(t, s.ListByJob("j2"), 1)
}

func TestListByFileOrdersByChunkIndex(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 2, []float32{1})))
	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 0, []float32{2})))
	require.NoError(t, s.Insert(ctx, newRecord("j1", "a.md", 1, []float32{3})))
	require.NoError(t, s.Insert(ctx, newRecord("j2", "b.md", 0, []float32{4})))

	records := s.ListByFile("a.md")

	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i, rec.Metadata.ChunkIndex)
	}
}

func TestStats(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert(context.Background(), newRecord("j1", "a.md", 0, []float32{1})))

	stats := s.Stats()

	assert.Equal(t, CollectionName, stats.Collection)
	assert.NotEmpty(t, stats.Instance)
	assert.Equal(t, 1, stats.Count)

	// Two stores never share an instance ID.
	assert.NotEqual(t, stats.Instance, New().Stats().Instance)
}
