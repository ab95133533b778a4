package models

import "time"

// PostData represents a blog post draft.
//
// Positive IDs are assigned by the server and permanent. IDs that are zero or
// negative are local-only placeholders handed out by the edit session before
// the record has ever been pushed; they are replaced during reconciliation.
type PostData struct {
	CreateTime time.Time `json:"create_time"`
	ModifyTime time.Time `json:"modify_time"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ID         int64     `json:"id"`
}

// RecordID returns the record identifier.
func (p PostData) RecordID() int64 {
	return p.ID
}

// IsLocalPlaceholder reports whether the post has not been assigned a server id yet.
func (p PostData) IsLocalPlaceholder() bool {
	return p.ID <= 0
}

// ContentHash returns the SHA256 digest of the post's mutable content fields.
// The id and timestamps are deliberately excluded: two posts with the same
// title and body hash identically regardless of where they are stored.
func (p PostData) ContentHash() string {
	return contentDigest(p.Title, p.Body)
}
