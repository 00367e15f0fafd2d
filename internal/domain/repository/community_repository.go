package repository

import (
	"context"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
)

// CommunityRepository persists board posts with their embedded replies.
type CommunityRepository interface {
	CreatePost(ctx context.Context, p *entity.CommunityPost) error
	GetPost(ctx context.Context, id string) (*entity.CommunityPost, error)
	// ListPosts returns up to limit posts, newest first.
	ListPosts(ctx context.Context, limit int) ([]entity.CommunityPost, error)
	// AppendReply atomically appends r to the post's reply thread.
	AppendReply(ctx context.Context, postID string, r *entity.Reply) error
}
