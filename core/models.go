package core

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a 64-bit identifier for internal bookkeeping entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Job describes a single file-processing request dequeued from the work queue.
// A job is consumed exactly once: it is either fully processed or dropped,
// never requeued.
type Job struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
}

// Chunk is a contiguous, possibly overlapping segment of normalized document
// text. Index is the chunk's 0-based position in the sequence produced for a
// document and becomes part of the stored record's identity.
type Chunk struct {
	Index int
	Text  string
	Size  int
}

// RecordMetadata carries the provenance of a stored vector record.
// The JSON field names match the backend mirror API.
type RecordMetadata struct {
	JobID          string    `json:"job_id"`
	FileName       string    `json:"file_name"`
	FilePath       string    `json:"file_path"`
	ChunkIndex     int       `json:"chunk_index"`
	ChunkSize      int       `json:"chunk_size"`
	CreatedAt      time.Time `json:"created_at"`
	Degraded       bool      `json:"degraded,omitempty"`
	DegradedReason string    `json:"degraded_reason,omitempty"`
}

// VectorRecord is the persisted unit combining a chunk's text, its embedding
// and provenance metadata. Records are never mutated after insertion into the
// vector store, only deleted.
type VectorRecord struct {
	ID        string         `json:"id"`
	Document  string         `json:"document"`
	Embedding []float32      `json:"embedding"`
	Metadata  RecordMetadata `json:"metadata"`
}

// RecordID builds the record identifier for a chunk of a job.
// Uniqueness follows from chunk indices being assigned once per extraction
// pass and job IDs never being reused.
func RecordID(jobID string, chunkIndex int) string {
	return jobID + "_" + strconv.Itoa(chunkIndex)
}

// NewVectorRecord builds a record for a chunk of a job with its embedding.
// CreatedAt is set to the current UTC time.
func NewVectorRecord(job *Job, chunk Chunk, embedding []float32) *VectorRecord {
	return &VectorRecord{
		ID:        RecordID(job.ID, chunk.Index),
		Document:  chunk.Text,
		Embedding: embedding,
		Metadata: RecordMetadata{
			JobID:      job.ID,
			FileName:   job.FileName,
			FilePath:   job.FilePath,
			ChunkIndex: chunk.Index,
			ChunkSize:  chunk.Size,
			CreatedAt:  time.Now().UTC(),
		},
	}
}

// PendingJob records a job whose stored records include degraded embeddings
// and which is therefore queued for re-embedding once the provider recovers.
type PendingJob struct {
	JobID          string
	FileName       string
	DegradedChunks int
	Attempts       int
	FirstSeen      time.Time
}
