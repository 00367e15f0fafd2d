package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	repo "github.com/cybertrain-io/cybertrain/internal/domain/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyText    = errors.New("content is required")
	ErrTextTooLong  = errors.New("content too long")
)

// ListPostsLimit caps how many posts the board returns.
const ListPostsLimit = 50

// CommunityService owns the message board: posts, threaded replies and search.
type CommunityService struct {
	Repo         repo.CommunityRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewCommunityService(r repo.CommunityRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string) *CommunityService {
	return &CommunityService{Repo: r, Logger: logger, ES: es, ESPostsIndex: esPostsIndex}
}

func (s *CommunityService) ListPosts(ctx context.Context) ([]entity.CommunityPost, error) {
	return s.Repo.ListPosts(ctx, ListPostsLimit)
}

// CreatePost validates and persists a new post authored by authorName,
// then indexes it for search on a best-effort basis.
func (s *CommunityService) CreatePost(ctx context.Context, authorName, text string) (*entity.CommunityPost, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > entity.MaxPostLen {
		return nil, ErrTextTooLong
	}
	p := &entity.CommunityPost{AuthorName: authorName, Text: text, Replies: []entity.Reply{}}
	if err := s.Repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}
	s.indexPost(ctx, p)
	return p, nil
}

// Reply appends a reply to the post's thread. Replies are append-only and
// keep insertion order.
func (s *CommunityService) Reply(ctx context.Context, postID, authorName, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	if len(text) > entity.MaxReplyLen {
		return ErrTextTooLong
	}
	r := &entity.Reply{AuthorName: authorName, Text: text, CreatedAt: time.Now().UTC()}
	if err := s.Repo.AppendReply(ctx, postID, r); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

func (s *CommunityService) indexPost(ctx context.Context, p *entity.CommunityPost) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"author_name": p.AuthorName,
		"text":        p.Text,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
}

// SearchPosts performs a simple multi_match search on post text and author.
func (s *CommunityService) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"text^2", "author_name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
