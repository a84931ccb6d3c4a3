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


package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJob(t *testing.T) {
	t.Run("valid job", func(t *testing.T) {
		job := &Job{ID: "j1", FileName: "doc.pdf", FilePath: "/data/doc.pdf"}
		assert.NoError(t, ValidateJob(job))
	})

	t.Run("nil job", func(t *testing.T) {
		err := ValidateJob(nil)
		assert.ErrorIs(t, err, ErrInvalidJob)
	})

	t.Run("empty id", func(t *testing.T) {
		err := ValidateJob(&Job{FileName: "doc.pdf", FilePath: "/data/doc.pdf"})
		assert.ErrorIs(t, err, ErrEmptyJobID)
	})

	t.Run("empty file name", func(t *testing.T) {
		err := ValidateJob(&Job{ID: "j1", FilePath: "/data/doc.pdf"})
		assert.ErrorIs(t, err, ErrEmptyFileName)
	})

	t.Run("empty file path", func(t *testing.T) {
		err := ValidateJob(&Job{ID: "j1", FileName: "doc.pdf"})
		assert.ErrorIs(t, err, ErrEmptyFilePath)
	})
}

func TestValidateChunkParams(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, ValidateChunkParams(1000, 200))
	})

	t.Run("zero overlap is valid", func(t *testing.T) {
		assert.NoError(t, ValidateChunkParams(100, 0))
	})

	t.Run("zero chunk size", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChunkParams(0, 0), ErrChunkSizeNotPositive)
	})

	t.Run("negative overlap", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChunkParams(100, -1), ErrOverlapNegative)
	})

	t.Run("overlap equal to chunk size", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChunkParams(100, 100), ErrOverlapTooLarge)
	})

	t.Run("overlap beyond chunk size", func(t *testing.T) {
		assert.ErrorIs(t, ValidateChunkParams(100, 150), ErrOverlapTooLarge)
	})
}
