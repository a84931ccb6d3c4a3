package store

import "errors"

var (
	// ErrNilRecord is returned when a nil record is inserted.
	ErrNilRecord = errors.New("record is nil")

	// ErrEmptyRecordID is returned when a record without an ID is inserted.
	ErrEmptyRecordID = errors.New("record id cannot be empty")

	// ErrEmptyBackendURL is returned when a mirror is constructed without a
	// backend URL.
	ErrEmptyBackendURL = errors.New("backend url cannot be empty")
)
