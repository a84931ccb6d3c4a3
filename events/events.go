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


// Package events publishes worker lifecycle and processing events to a shared
// application log.
//
// Events are structured JSON entries with PascalCase field names, matching
// the shape the backend writes to the same log. Emission is best-effort: a
// sink failure must never fail the operation that produced the event, so
// Emit has no error return.
package events

import (
	"context"
	"time"
)

// Severity levels.
const (
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// Event names emitted by the worker.
const (
	WorkerStarted   = "WORKER_STARTED"
	WorkerHeartbeat = "WORKER_HEARTBEAT"

	FileProcessingCompleted = "FILE_PROCESSING_COMPLETED"
	FileProcessingFailed    = "FILE_PROCESSING_FAILED"
	FileProcessingError     = "FILE_PROCESSING_ERROR"
	FileTypeUnsupported     = "FILE_TYPE_UNSUPPORTED"
	FileNotFound            = "FILE_NOT_FOUND"
	JobPayloadInvalid       = "JOB_PAYLOAD_INVALID"
)

// Event is one entry in the application log. The JSON field names are
// PascalCase because the backend consumes the same list.
type Event struct {
	Timestamp time.Time `json:"Timestamp"`
	Level     string    `json:"Level"`
	Name      string    `json:"Event"`
	Message   string    `json:"Message,omitempty"`
	FileName  string    `json:"FileName,omitempty"`
	FilePath  string    `json:"FilePath,omitempty"`
	FileSize  int64     `json:"FileSize,omitempty"`
	Error     string    `json:"Error,omitempty"`

	// Details is free-form text. The backend deserializes this field as a
	// string, so it must never carry structured JSON.
	Details string `json:"Details,omitempty"`
}

// New creates an event with the given level and name, stamped with the
// current UTC time.
func New(level, name string) Event {
	return Event{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Name:      name,
	}
}

// Sink receives events. Implementations must swallow their own failures.
type Sink interface {
	Emit(ctx context.Context, e Event)
}
