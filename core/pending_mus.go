package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// PendingJobMUS serializes PendingJob values for storage backends.
// FirstSeen is encoded as Unix microseconds.
var PendingJobMUS = pendingJobMUS{}

type pendingJobMUS struct{}

func (pendingJobMUS) Marshal(v PendingJob, bs []byte) (n int) {
	n = ord.String.Marshal(v.JobID, bs)
	n += ord.String.Marshal(v.FileName, bs[n:])
	n += varint.Int.Marshal(v.DegradedChunks, bs[n:])
	n += varint.Int.Marshal(v.Attempts, bs[n:])
	n += varint.Int64.Marshal(v.FirstSeen.UnixMicro(), bs[n:])
	return
}

func (pendingJobMUS) Unmarshal(bs []byte) (v PendingJob, n int, err error) {
	var n1 int
	v.JobID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.FileName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DegradedChunks, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Attempts, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var usec int64
	usec, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FirstSeen = time.UnixMicro(usec).UTC()
	return
}

func (pendingJobMUS) Size(v PendingJob) (size int) {
	size = ord.String.Size(v.JobID)
	size += ord.String.Size(v.FileName)
	size += varint.Int.Size(v.DegradedChunks)
	size += varint.Int.Size(v.Attempts)
	size += varint.Int64.Size(v.FirstSeen.UnixMicro())
	return
}

func (s pendingJobMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}
