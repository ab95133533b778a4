package storage

import "errors"

// Ошибки серверного хранилища
var (
	// ErrPostNotFound is returned when the requested post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound is returned when the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")
)
