package models

import (
	"strconv"
	"time"
)

// CommentData represents a comment attached to a post, or a reply attached to
// another comment when IsReply is set.
//
// BindingID is the id of the entity the comment is attached to. When the
// bound entity's id is remapped from a local placeholder to a server id, the
// binding must be rewritten as well (see the reconcile package).
type CommentData struct {
	CreateTime time.Time `json:"create_time"`
	ModifyTime time.Time `json:"modify_time"`
	Content    string    `json:"content"`
	ID         int64     `json:"id"`
	BindingID  int64     `json:"binding_id"`
	IsReply    bool      `json:"is_reply"`
}

// RecordID returns the record identifier.
func (c CommentData) RecordID() int64 {
	return c.ID
}

// IsLocalPlaceholder reports whether the comment has not been assigned a server id yet.
func (c CommentData) IsLocalPlaceholder() bool {
	return c.ID <= 0
}

// ContentHash returns the SHA256 digest of the comment's mutable content
// fields: content, binding id and the reply flag. Id and timestamps are excluded.
func (c CommentData) ContentHash() string {
	return contentDigest(
		c.Content,
		strconv.FormatInt(c.BindingID, 10),
		strconv.FormatBool(c.IsReply),
	)
}
