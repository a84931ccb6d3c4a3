package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/docvec/core"
)

func TestNewHTTPMirror(t *testing.T) {
	t.Run("empty backend url", func(t *testing.T) {
		_, err := NewHTTPMirror("")
		assert.ErrorIs(t, err, ErrEmptyBackendURL)
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		m, err := NewHTTPMirror("http://backend:8080/")
		require.NoError(t, err)
		assert.Equal(t, "http://backend:8080/api/question/vector", m.endpoint)
	})
}

func TestHTTPMirrorPublish(t *testing.T) {
	var got core.VectorRecord
	var path, contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m, err := NewHTTPMirror(srv.URL)
	require.NoError(t, err)

	rec := newRecord("j1", "a.md", 0, []float32{0.5, 0.25})
	require.NoError(t, m.Publish(context.Background(), rec))

	assert.Equal(t, "/api/question/vector", path)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Document, got.Document)
	assert.Equal(t, rec.Embedding, got.Embedding)
	assert.Equal(t, rec.Metadata.JobID, got.Metadata.JobID)
}

func TestHTTPMirrorPublishServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m, err := NewHTTPMirror(srv.URL)
	require.NoError(t, err)

	assert.Error(t, m.Publish(context.Background(), newRecord("j1", "a.md", 0, []float32{1})))
}

func TestInsertSurvivesMirrorFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m, err := NewHTTPMirror(srv.URL)
	require.NoError(t, err)

	s := New(WithMirror(m))
	require.NoError(t, s.Insert(context.Background(), newRecord("j1", "a.md", 0, []float32{1})))
	assert.Equal(t, 1, s.Count())
}
