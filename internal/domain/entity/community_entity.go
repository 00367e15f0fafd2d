package entity

import "time"

// Length limits enforced before any write reaches the store.
const (
	MaxPostLen  = 1000
	MaxReplyLen = 500
)

// Reply is embedded in its parent post, append-only, insertion-ordered.
type Reply struct {
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommunityPost is a board post with its embedded reply thread.
type CommunityPost struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Replies    []Reply   `json:"replies"`
	CreatedAt  time.Time `json:"created_at"`
}
