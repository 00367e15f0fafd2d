package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
)

func newCommunityService(r *fakeCommunityRepo) *CommunityService {
	return NewCommunityService(r, nil, nil, "")
}

func TestCreatePost(t *testing.T) {
	repo := newFakeCommunityRepo()
	svc := newCommunityService(repo)

	p, err := svc.CreatePost(context.Background(), "alice", "  hello board  ")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "alice", p.AuthorName)
	assert.Equal(t, "hello board", p.Text)
	assert.NotNil(t, p.Replies)
	assert.Empty(t, p.Replies)
}

func TestCreatePostValidation(t *testing.T) {
	svc := newCommunityService(newFakeCommunityRepo())

	_, err := svc.CreatePost(context.Background(), "alice", "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = svc.CreatePost(context.Background(), "alice", strings.Repeat("a", entity.MaxPostLen+1))
	assert.ErrorIs(t, err, ErrTextTooLong)

	// exactly at the limit is accepted
	_, err = svc.CreatePost(context.Background(), "alice", strings.Repeat("a", entity.MaxPostLen))
	assert.NoError(t, err)
}

func TestListPostsNewestFirst(t *testing.T) {
	repo := newFakeCommunityRepo()
	svc := newCommunityService(repo)

	_, err := svc.CreatePost(context.Background(), "alice", "first")
	require.NoError(t, err)
	_, err = svc.CreatePost(context.Background(), "bob", "second")
	require.NoError(t, err)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Text)
	assert.Equal(t, "first", posts[1].Text)
}

func TestListPostsCapped(t *testing.T) {
	repo := newFakeCommunityRepo()
	svc := newCommunityService(repo)

	for i := 0; i < ListPostsLimit+5; i++ {
		_, err := svc.CreatePost(context.Background(), "alice", "post")
		require.NoError(t, err)
	}
	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, ListPostsLimit)
}

func TestReply(t *testing.T) {
	repo := newFakeCommunityRepo()
	svc := newCommunityService(repo)

	p, err := svc.CreatePost(context.Background(), "alice", "question?")
	require.NoError(t, err)

	require.NoError(t, svc.Reply(context.Background(), p.ID, "bob", " answer one "))
	require.NoError(t, svc.Reply(context.Background(), p.ID, "carol", "answer two"))

	got, err := repo.GetPost(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, got.Replies, 2)
	// insertion order preserved
	assert.Equal(t, "bob", got.Replies[0].AuthorName)
	assert.Equal(t, "answer one", got.Replies[0].Text)
	assert.Equal(t, "carol", got.Replies[1].AuthorName)
}

func TestReplyValidation(t *testing.T) {
	repo := newFakeCommunityRepo()
	svc := newCommunityService(repo)

	p, err := svc.CreatePost(context.Background(), "alice", "question?")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Reply(context.Background(), p.ID, "bob", "  "), ErrEmptyText)
	assert.ErrorIs(t, svc.Reply(context.Background(), p.ID, "bob", strings.Repeat("b", entity.MaxReplyLen+1)), ErrTextTooLong)
	assert.NoError(t, svc.Reply(context.Background(), p.ID, "bob", strings.Repeat("b", entity.MaxReplyLen)))
}

func TestReplyUnknownPost(t *testing.T) {
	svc := newCommunityService(newFakeCommunityRepo())
	err := svc.Reply(context.Background(), "p-missing", "bob", "hello")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSearchPostsWithoutBackend(t *testing.T) {
	svc := newCommunityService(newFakeCommunityRepo())
	hits, err := svc.SearchPosts(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
