package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
)

func newTrainingService() (*TrainingService, *fakeSessionRepo, *fakeProgressRepo) {
	sessions := newFakeSessionRepo()
	progress := newFakeProgressRepo()
	return NewTrainingService(sessions, progress, nil, nil), sessions, progress
}

func TestSaveSessionUnknownGameType(t *testing.T) {
	svc, sessions, _ := newTrainingService()
	_, err := svc.SaveSession(context.Background(), "u-1", "alice", SaveSessionInput{GameType: "chess", Score: 10})
	assert.ErrorIs(t, err, ErrUnknownGameType)
	assert.Empty(t, sessions.sessions)
}

func TestSaveSessionFirstPlay(t *testing.T) {
	svc, sessions, progress := newTrainingService()

	id, err := svc.SaveSession(context.Background(), "u-1", "alice", SaveSessionInput{
		GameType: entity.GameExploit,
		Score:    50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, sessions.sessions, 1)
	s := sessions.sessions[0]
	assert.Equal(t, 1, s.Level)
	assert.NotNil(t, s.CompletedChallenges)

	p, err := progress.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.GamesPlayed)
	assert.Equal(t, int64(50), p.TotalScore)
	assert.Equal(t, int64(50), p.HighScores[entity.GameExploit])
}

func TestSaveSessionAggregates(t *testing.T) {
	svc, _, progress := newTrainingService()
	ctx := context.Background()

	_, err := svc.SaveSession(ctx, "u-1", "alice", SaveSessionInput{GameType: entity.GameExploit, Score: 50})
	require.NoError(t, err)
	_, err = svc.SaveSession(ctx, "u-1", "alice", SaveSessionInput{GameType: entity.GameExploit, Score: 30})
	require.NoError(t, err)

	p, err := progress.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.GamesPlayed)
	assert.Equal(t, int64(80), p.TotalScore)
	assert.Equal(t, int64(50), p.HighScores[entity.GameExploit])
}

func TestSaveSessionRefreshesUserName(t *testing.T) {
	svc, _, progress := newTrainingService()
	ctx := context.Background()

	_, err := svc.SaveSession(ctx, "u-1", "alice", SaveSessionInput{GameType: entity.GameCyber, Score: 10})
	require.NoError(t, err)
	_, err = svc.SaveSession(ctx, "u-1", "alice-renamed", SaveSessionInput{GameType: entity.GameCyber, Score: 10})
	require.NoError(t, err)

	p, err := progress.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice-renamed", p.UserName)
}

func TestGetProgressNoHistory(t *testing.T) {
	svc, _, _ := newTrainingService()
	view, err := svc.GetProgress(context.Background(), "u-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, view.UserProgress.GamesPlayed)
	assert.Equal(t, int64(0), view.UserProgress.TotalScore)
	assert.Empty(t, view.RecentSessions)
}

func TestGetProgressRecentSessions(t *testing.T) {
	svc, _, _ := newTrainingService()
	ctx := context.Background()

	for i := 0; i < recentSessions+3; i++ {
		_, err := svc.SaveSession(ctx, "u-1", "alice", SaveSessionInput{GameType: entity.GameCyber, Score: int64(i)})
		require.NoError(t, err)
	}
	// other users' sessions never leak in
	_, err := svc.SaveSession(ctx, "u-2", "bob", SaveSessionInput{GameType: entity.GameCyber, Score: 999})
	require.NoError(t, err)

	view, err := svc.GetProgress(ctx, "u-1", "alice")
	require.NoError(t, err)
	require.Len(t, view.RecentSessions, recentSessions)
	// newest first
	assert.Equal(t, int64(recentSessions+2), view.RecentSessions[0].Score)
	for _, s := range view.RecentSessions {
		assert.Equal(t, "u-1", s.UserID)
	}
}

func TestLeaderboardOverall(t *testing.T) {
	svc, _, _ := newTrainingService()
	ctx := context.Background()

	_, err := svc.SaveSession(ctx, "u-1", "alice", SaveSessionInput{GameType: entity.GameCyber, Score: 30})
	require.NoError(t, err)
	_, err = svc.SaveSession(ctx, "u-2", "bob", SaveSessionInput{GameType: entity.GameExploit, Score: 70})
	require.NoError(t, err)

	entries, err := svc.Leaderboard(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].UserName)
	assert.Equal(t, int64(70), entries[0].TotalScore)
	assert.Equal(t, "alice", entries[1].UserName)
}

func TestLeaderboardByGame(t *testing.T) {
	svc, _, _ := newTrainingService()
	ctx := context.Background()

	_, err := svc.SaveSession(ctx, "u-1", "alice", SaveSessionInput{GameType: entity.GameCyber, Score: 30})
	require.NoError(t, err)
	_, err = svc.SaveSession(ctx, "u-2", "bob", SaveSessionInput{GameType: entity.GameExploit, Score: 70})
	require.NoError(t, err)
	// zero score in the requested game keeps carol off that board
	_, err = svc.SaveSession(ctx, "u-3", "carol", SaveSessionInput{GameType: entity.GameCyber, Score: 0})
	require.NoError(t, err)

	entries, err := svc.Leaderboard(ctx, entity.GameCyber)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].UserName)
}

func TestLeaderboardUnknownGameType(t *testing.T) {
	svc, _, _ := newTrainingService()
	_, err := svc.Leaderboard(context.Background(), "chess")
	assert.ErrorIs(t, err, ErrUnknownGameType)
}

func TestLeaderboardTruncated(t *testing.T) {
	svc, _, progress := newTrainingService()
	ctx := context.Background()

	for i := 0; i < leaderboardLimit+5; i++ {
		p := entity.NewUserProgress(string(rune('a'+i)), "player")
		p.TotalScore = int64(i)
		p.GamesPlayed = 1
		require.NoError(t, progress.Upsert(ctx, p))
	}
	entries, err := svc.Leaderboard(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, leaderboardLimit)
}
