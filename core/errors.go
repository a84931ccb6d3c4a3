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

import "errors"

// Domain validation errors
var (
	// ErrInvalidJob indicates a Job failed validation.
	ErrInvalidJob = errors.New("invalid job")

	// ErrEmptyJobID indicates the job ID field is empty.
	ErrEmptyJobID = errors.New("job id cannot be empty")

	// ErrEmptyFileName indicates the job file name field is empty.
	ErrEmptyFileName = errors.New("file name cannot be empty")

	// ErrEmptyFilePath indicates the job file path field is empty.
	ErrEmptyFilePath = errors.New("file path cannot be empty")

	// ErrInvalidChunking indicates invalid chunking parameters.
	ErrInvalidChunking = errors.New("invalid chunking parameters")

	// ErrChunkSizeNotPositive indicates a chunk size of zero or less.
	ErrChunkSizeNotPositive = errors.New("chunk size must be positive")

	// ErrOverlapNegative indicates a negative chunk overlap.
	ErrOverlapNegative = errors.New("chunk overlap cannot be negative")

	// ErrOverlapTooLarge indicates an overlap that would keep the chunking
	// cursor from advancing.
	ErrOverlapTooLarge = errors.New("chunk overlap must be smaller than chunk size")
)
