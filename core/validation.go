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

import "fmt"

// ValidateJob validates a Job according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - FileName must not be empty
//   - FilePath must not be empty
//
// NOT validated here (checked by the worker against the filesystem):
//   - whether the file type is supported
//   - whether the file exists
func ValidateJob(job *Job) error {
	if job == nil {
		return fmt.Errorf("%w: job is nil", ErrInvalidJob)
	}

	if job.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJob, ErrEmptyJobID)
	}

	if job.FileName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJob, ErrEmptyFileName)
	}

	if job.FilePath == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJob, ErrEmptyFilePath)
	}

	return nil
}

// ValidateChunkParams validates chunking parameters.
//
// The chunking cursor only advances strictly when 0 <= overlap < chunkSize,
// so these bounds are enforced before any chunker is constructed.
func ValidateChunkParams(chunkSize, overlap int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunking, ErrChunkSizeNotPositive)
	}

	if overlap < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunking, ErrOverlapNegative)
	}

	if overlap >= chunkSize {
		return fmt.Errorf("%w: %w", ErrInvalidChunking, ErrOverlapTooLarge)
	}

	return nil
}
