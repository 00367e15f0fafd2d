package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	repo "github.com/cybertrain-io/cybertrain/internal/domain/repository"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

var ErrUnknownGameType = errors.New("unknown game type")

const (
	// LeaderboardOverall ranks by total score across all game types.
	LeaderboardOverall = "overall"
	leaderboardLimit   = 10
	recentSessions     = 10
	leaderboardTTL     = 30 * time.Second
)

// TrainingService owns the session ledger, the progress aggregate and the
// leaderboard queries.
type TrainingService struct {
	Sessions repo.SessionRepository
	Progress repo.ProgressRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
}

func NewTrainingService(sessions repo.SessionRepository, progress repo.ProgressRepository, rdb *redis.Client, logger *logrus.Logger) *TrainingService {
	return &TrainingService{Sessions: sessions, Progress: progress, Redis: rdb, Logger: logger}
}

type SaveSessionInput struct {
	GameType            string
	Score               int64
	Level               int
	TimeSpent           int64
	CompletedChallenges []string
	GameData            json.RawMessage
}

// SaveSession appends an immutable session record and folds it into the
// user's aggregate. Returns the new session id.
func (s *TrainingService) SaveSession(ctx context.Context, userID, userName string, in SaveSessionInput) (string, error) {
	if !entity.ValidGameType(in.GameType) {
		return "", ErrUnknownGameType
	}

	session := &entity.GameSession{
		UserID:              userID,
		UserName:            userName,
		GameType:            in.GameType,
		Score:               in.Score,
		Level:               in.Level,
		TimeSpent:           in.TimeSpent,
		CompletedChallenges: in.CompletedChallenges,
		GameData:            in.GameData,
	}
	if session.Level < 1 {
		session.Level = 1
	}
	if session.CompletedChallenges == nil {
		session.CompletedChallenges = []string{}
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return "", err
	}

	progress, err := s.Progress.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return "", err
		}
		progress = entity.NewUserProgress(userID, userName)
	}
	progress.UserName = userName
	progress.ApplySession(session)
	if err := s.Progress.Upsert(ctx, progress); err != nil {
		return "", err
	}
	return session.ID, nil
}

type ProgressView struct {
	UserProgress   *entity.UserProgress `json:"user_progress"`
	RecentSessions []entity.GameSession `json:"recent_sessions"`
}

// GetProgress returns the aggregate (zero-valued when the user has not
// played yet) plus the most recent sessions, newest first.
func (s *TrainingService) GetProgress(ctx context.Context, userID, userName string) (*ProgressView, error) {
	progress, err := s.Progress.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		progress = entity.NewUserProgress(userID, userName)
	}
	sessions, err := s.Sessions.ListRecent(ctx, userID, recentSessions)
	if err != nil {
		return nil, err
	}
	return &ProgressView{UserProgress: progress, RecentSessions: sessions}, nil
}

// Leaderboard returns the top players, overall or for one game type.
// Results are cached briefly; bounded staleness is fine for a ranking.
func (s *TrainingService) Leaderboard(ctx context.Context, gameType string) ([]entity.LeaderboardEntry, error) {
	if gameType == "" {
		gameType = LeaderboardOverall
	}
	if gameType != LeaderboardOverall && !entity.ValidGameType(gameType) {
		return nil, ErrUnknownGameType
	}

	cacheKey := "leaderboard:" + gameType
	if s.Redis != nil {
		var cached []entity.LeaderboardEntry
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	var entries []entity.LeaderboardEntry
	var err error
	if gameType == LeaderboardOverall {
		entries, err = s.Progress.TopOverall(ctx, leaderboardLimit)
	} else {
		entries, err = s.Progress.TopByGame(ctx, gameType, leaderboardLimit)
	}
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, cacheKey, entries, leaderboardTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", cacheKey).Warn("leaderboard cache write failed")
		}
	}
	return entries, nil
}
