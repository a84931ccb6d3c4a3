package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("job-42")
		b := IDFromContent("job-42")
		assert.Equal(t, a, b)
	})

	t.Run("different content yields different ids", func(t *testing.T) {
		a := IDFromContent("job-42")
		b := IDFromContent("job-43")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		assert.NotPanics(t, func() { IDFromContent("") })
	})
}

func TestRecordID(t *testing.T) {
	assert.Equal(t, "job-1_0", RecordID("job-1", 0))
	assert.Equal(t, "job-1_17", RecordID("job-1", 17))
}

func TestNewVectorRecord(t *testing.T) {
	job := &Job{ID: "j1", FileName: "report.pdf", FilePath: "/data/report.pdf"}
	chunk := Chunk{Index: 2, Text: "some text", Size: 9}
	embedding := []float32{0.1, 0.2, 0.3}

	before := time.Now().UTC()
	rec := NewVectorRecord(job, chunk, embedding)
	after := time.Now().UTC()

	require.NotNil(t, rec)
	assert.Equal(t, "j1_2", rec.ID)
	assert.Equal(t, "some text", rec.Document)
	assert.Equal(t, embedding, rec.Embedding)

	assert.Equal(t, "j1", rec.Metadata.JobID)
	assert.Equal(t, "report.pdf", rec.Metadata.FileName)
	assert.Equal(t, "/data/report.pdf", rec.Metadata.FilePath)
	assert.Equal(t, 2, rec.Metadata.ChunkIndex)
	assert.Equal(t, 9, rec.Metadata.ChunkSize)
	assert.False(t, rec.Metadata.Degraded)

	assert.False(t, rec.Metadata.CreatedAt.Before(before))
	assert.False(t, rec.Metadata.CreatedAt.After(after))
}

func TestPendingJobMUSRoundtrip(t *testing.T) {
	in := PendingJob{
		JobID:          "job-7",
		FileName:       "notes.md",
		DegradedChunks: 3,
		Attempts:       1,
		FirstSeen:      time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC),
	}

	bs := make([]byte, PendingJobMUS.Size(in))
	n := PendingJobMUS.Marshal(in, bs)
	require.Equal(t, len(bs), n)

	out, n, err := PendingJobMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, in, out)
}

func TestPendingJobMUSTruncated(t *testing.T) {
	in := PendingJob{JobID: "job-7", FileName: "notes.md", FirstSeen: time.Now().UTC()}
	bs := make([]byte, PendingJobMUS.Size(in))
	PendingJobMUS.Marshal(in, bs)

	_, _, err := PendingJobMUS.Unmarshal(bs[:2])
	assert.Error(t, err)
}
