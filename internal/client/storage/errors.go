package storage

import "errors"

// Common client storage errors
var (
	// ErrPostNotFound indicates that post was not found in the local store
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound indicates that comment was not found in the local store
	ErrCommentNotFound = errors.New("comment not found")

	// ErrDuplicateID indicates an insert with an id that already exists
	ErrDuplicateID = errors.New("record with this id already exists")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
