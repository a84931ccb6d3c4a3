package storage

import (
	"fmt"

	"github.com/poiesic/docvec/core"
)

// MarshalPendingJob serializes a PendingJob to bytes.
func MarshalPendingJob(job *core.PendingJob) []byte {
	buf := make([]byte, core.PendingJobMUS.Size(*job))
	core.PendingJobMUS.Marshal(*job, buf)
	return buf
}

// UnmarshalPendingJob deserializes a PendingJob from bytes.
func UnmarshalPendingJob(data []byte) (*core.PendingJob, error) {
	job, _, err := core.PendingJobMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &job, nil
}
