package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	repo "github.com/cybertrain-io/cybertrain/internal/domain/repository"
)

// In-memory repository fakes mirroring the postgres implementations'
// contracts (sentinel errors, ordering, id assignment).

type fakeUserRepo struct {
	users  map[string]*entity.User // by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

type fakeCommunityRepo struct {
	posts  []entity.CommunityPost // oldest first
	nextID int
}

func newFakeCommunityRepo() *fakeCommunityRepo { return &fakeCommunityRepo{} }

func (f *fakeCommunityRepo) CreatePost(_ context.Context, p *entity.CommunityPost) error {
	f.nextID++
	p.ID = fmt.Sprintf("p-%d", f.nextID)
	p.CreatedAt = time.Now().UTC()
	if p.Replies == nil {
		p.Replies = []entity.Reply{}
	}
	f.posts = append(f.posts, *p)
	return nil
}

func (f *fakeCommunityRepo) GetPost(_ context.Context, id string) (*entity.CommunityPost, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			cp := f.posts[i]
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCommunityRepo) ListPosts(_ context.Context, limit int) ([]entity.CommunityPost, error) {
	out := make([]entity.CommunityPost, 0, limit)
	for i := len(f.posts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.posts[i])
	}
	return out, nil
}

func (f *fakeCommunityRepo) AppendReply(_ context.Context, postID string, r *entity.Reply) error {
	for i := range f.posts {
		if f.posts[i].ID == postID {
			f.posts[i].Replies = append(f.posts[i].Replies, *r)
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeSessionRepo struct {
	sessions []entity.GameSession // insertion order
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo { return &fakeSessionRepo{} }

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.GameSession) error {
	f.nextID++
	s.ID = fmt.Sprintf("s-%d", f.nextID)
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	f.sessions = append(f.sessions, *s)
	return nil
}

func (f *fakeSessionRepo) ListRecent(_ context.Context, userID string, limit int) ([]entity.GameSession, error) {
	out := make([]entity.GameSession, 0, limit)
	for i := len(f.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if f.sessions[i].UserID == userID {
			out = append(out, f.sessions[i])
		}
	}
	return out, nil
}

type fakeProgressRepo struct {
	rows map[string]*entity.UserProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: map[string]*entity.UserProgress{}}
}

func (f *fakeProgressRepo) Get(_ context.Context, userID string) (*entity.UserProgress, error) {
	p, ok := f.rows[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	cp.HighScores = map[string]int64{}
	for k, v := range p.HighScores {
		cp.HighScores[k] = v
	}
	return &cp, nil
}

func (f *fakeProgressRepo) Upsert(_ context.Context, p *entity.UserProgress) error {
	cp := *p
	cp.HighScores = map[string]int64{}
	for k, v := range p.HighScores {
		cp.HighScores[k] = v
	}
	cp.UpdatedAt = time.Now().UTC()
	f.rows[p.UserID] = &cp
	return nil
}

func (f *fakeProgressRepo) TopOverall(_ context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows := f.sorted(func(a, b *entity.UserProgress) bool {
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		return a.UserID < b.UserID
	})
	return toEntries(rows, limit), nil
}

func (f *fakeProgressRepo) TopByGame(_ context.Context, gameType string, limit int) ([]entity.LeaderboardEntry, error) {
	var eligible []*entity.UserProgress
	for _, p := range f.rows {
		if p.HighScores[gameType] > 0 {
			eligible = append(eligible, p)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.HighScores[gameType] != b.HighScores[gameType] {
			return a.HighScores[gameType] > b.HighScores[gameType]
		}
		return a.UserID < b.UserID
	})
	return toEntries(eligible, limit), nil
}

func (f *fakeProgressRepo) sorted(less func(a, b *entity.UserProgress) bool) []*entity.UserProgress {
	out := make([]*entity.UserProgress, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func toEntries(rows []*entity.UserProgress, limit int) []entity.LeaderboardEntry {
	out := make([]entity.LeaderboardEntry, 0, limit)
	for _, p := range rows {
		if len(out) == limit {
			break
		}
		out = append(out, entity.LeaderboardEntry{
			UserName:    p.UserName,
			TotalScore:  p.TotalScore,
			HighScores:  p.HighScores,
			LastPlayed:  p.LastPlayed,
			GamesPlayed: p.GamesPlayed,
		})
	}
	return out
}

// compile-time interface checks
var (
	_ repo.UserRepository      = (*fakeUserRepo)(nil)
	_ repo.CommunityRepository = (*fakeCommunityRepo)(nil)
	_ repo.SessionRepository   = (*fakeSessionRepo)(nil)
	_ repo.ProgressRepository  = (*fakeProgressRepo)(nil)
)
