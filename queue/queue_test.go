package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docvec/core"
)

func TestParseJob(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := `{"id":"job-1","fileName":"report.pdf","filePath":"/data/report.pdf"}`

		job, err := ParseJob(payload)

		require.NoError(t, err)
		assert.Equal(t, "job-1", job.ID)
		assert.Equal(t, "report.pdf", job.FileName)
		assert.Equal(t, "/data/report.pdf", job.FilePath)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseJob(`{"id": "job-1"`)
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := ParseJob(`"just a string"`)
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, err := ParseJob(`{"id":"job-1"}`)
		assert.ErrorIs(t, err, core.ErrInvalidJob)
	})
}

func TestNewRedisSource(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		_, err := NewRedisSource(nil, DefaultQueueKey, time.Second)
		assert.Error(t, err)
	})
}
