package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	"github.com/cybertrain-io/cybertrain/internal/domain/repository"
)

// CommunityRepository stores posts one row each, with the reply thread
// embedded as a jsonb array so appends stay insertion-ordered.
type CommunityRepository struct {
	pool *pgxpool.Pool
}

func NewCommunityRepository(pool *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{pool: pool}
}

func (r *CommunityRepository) CreatePost(ctx context.Context, p *entity.CommunityPost) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO community_posts (author_name, text)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, p.AuthorName, p.Text)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *CommunityRepository) GetPost(ctx context.Context, id string) (*entity.CommunityPost, error) {
	p := &entity.CommunityPost{}
	var replies []byte
	row := r.pool.QueryRow(ctx, `
		SELECT id, author_name, text, replies, created_at
		FROM community_posts
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.AuthorName, &p.Text, &replies, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(replies, &p.Replies); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *CommunityRepository) ListPosts(ctx context.Context, limit int) ([]entity.CommunityPost, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, author_name, text, replies, created_at
		FROM community_posts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]entity.CommunityPost, 0, limit)
	for rows.Next() {
		var p entity.CommunityPost
		var replies []byte
		if err := rows.Scan(&p.ID, &p.AuthorName, &p.Text, &replies, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(replies, &p.Replies); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *CommunityRepository) AppendReply(ctx context.Context, postID string, reply *entity.Reply) error {
	b, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE community_posts
		SET replies = replies || $1::jsonb
		WHERE id = $2
	`, b, postID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CommunityRepository = (*CommunityRepository)(nil)
