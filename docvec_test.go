package docvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docvec/ai"
	"github.com/poiesic/docvec/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "file_processing_queue", cfg.QueueKey)
	assert.Equal(t, "application_logs", cfg.LogKey)
	assert.Equal(t, 1000, cfg.ChunkSize)
	assert.Equal(t, 200, cfg.ChunkOverlap)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Run("missing redis address", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RedisAddr = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing ai config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AI = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad provider", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AI.Provider = "nope"
		assert.ErrorIs(t, cfg.Validate(), ai.ErrUnknownProvider)
	})

	t.Run("bad chunking", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ChunkOverlap = cfg.ChunkSize
		assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidChunking)
	})
}

func TestNewService(t *testing.T) {
	// Default config with in-memory bookkeeping builds without touching
	// the network.
	svc, err := New(DefaultConfig())
	require.NoError(t, err)
	defer svc.Close()

	assert.NotNil(t, svc.Searcher())
	assert.NotNil(t, svc.Store())
	assert.Equal(t, "documents", svc.Stats().Collection)
	assert.Zero(t, svc.Stats().Count)
}

func TestNewServiceInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AI.Model = ""

	_, err := New(cfg)
	assert.Error(t, err)
}
