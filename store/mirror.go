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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/docvec/core"
)

// Mirror receives a copy of every record inserted into the store.
type Mirror interface {
	Publish(ctx context.Context, rec *core.VectorRecord) error
}

const (
	mirrorPath    = "/api/question/vector"
	mirrorTimeout = 10 * time.Second
)

// HTTPMirror posts inserted records to a backend's vector endpoint as JSON.
// It is best-effort by contract: callers log its errors and move on.
type HTTPMirror struct {
	endpoint string
	client   *http.Client
}

// NewHTTPMirror creates a mirror posting to the given backend base URL.
func NewHTTPMirror(backendURL string) (*HTTPMirror, error) {
	if backendURL == "" {
		return nil, ErrEmptyBackendURL
	}
	return &HTTPMirror{
		endpoint: strings.TrimSuffix(backendURL, "/") + mirrorPath,
		client:   &http.Client{Timeout: mirrorTimeout},
	}, nil
}

// Publish sends one record to the backend.
func (m *HTTPMirror) Publish(ctx context.Context, rec *core.VectorRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("backend returned %s", resp.Status)
	}
	return nil
}
