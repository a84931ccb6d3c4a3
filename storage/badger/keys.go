package badger

import (
	"fmt"

	"github.com/poiesic/docvec/core"
)

// Key prefixes for different data types
const (
	pendingJobPrefix = "penjob"
)

// makePendingJobKey generates a key for a pending job entry. The job ID is
// hashed so arbitrary ID strings yield fixed-width keys.
func makePendingJobKey(jobID string) []byte {
	return []byte(fmt.Sprintf("%s:%d", pendingJobPrefix, core.IDFromContent(jobID)))
}
