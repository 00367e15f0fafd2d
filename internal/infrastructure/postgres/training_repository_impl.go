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

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.GameSession) error {
	challenges, err := json.Marshal(s.CompletedChallenges)
	if err != nil {
		return err
	}
	gameData := s.GameData
	if len(gameData) == 0 {
		gameData = json.RawMessage("{}")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO game_sessions (user_id, user_name, game_type, score, level, time_spent, completed_challenges, game_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, s.UserID, s.UserName, s.GameType, s.Score, s.Level, s.TimeSpent, challenges, []byte(gameData))
	return row.Scan(&s.ID, &s.CreatedAt)
}

func (r *SessionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]entity.GameSession, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, user_name, game_type, score, level, time_spent, completed_challenges, game_data, created_at
		FROM game_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]entity.GameSession, 0, limit)
	for rows.Next() {
		var s entity.GameSession
		var challenges, gameData []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.UserName, &s.GameType, &s.Score,
			&s.Level, &s.TimeSpent, &challenges, &gameData, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(challenges, &s.CompletedChallenges); err != nil {
			return nil, err
		}
		s.GameData = json.RawMessage(gameData)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

type ProgressRepository struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

func (r *ProgressRepository) Get(ctx context.Context, userID string) (*entity.UserProgress, error) {
	p := &entity.UserProgress{}
	var highScores, achievements []byte
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, user_name, total_score, games_played, high_scores, achievements, last_played, updated_at
		FROM user_progress
		WHERE user_id = $1
	`, userID)
	if err := row.Scan(&p.UserID, &p.UserName, &p.TotalScore, &p.GamesPlayed,
		&highScores, &achievements, &p.LastPlayed, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(highScores, &p.HighScores); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(achievements, &p.Achievements); err != nil {
		return nil, err
	}
	return p, nil
}

// Upsert writes the whole aggregate row. Concurrent saves for one user are
// last-writer-wins, which the leaderboard tolerates.
func (r *ProgressRepository) Upsert(ctx context.Context, p *entity.UserProgress) error {
	highScores, err := json.Marshal(p.HighScores)
	if err != nil {
		return err
	}
	achievements, err := json.Marshal(p.Achievements)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO user_progress (user_id, user_name, total_score, games_played, high_scores, achievements, last_played, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (user_id) DO UPDATE SET
			user_name    = EXCLUDED.user_name,
			total_score  = EXCLUDED.total_score,
			games_played = EXCLUDED.games_played,
			high_scores  = EXCLUDED.high_scores,
			achievements = EXCLUDED.achievements,
			last_played  = EXCLUDED.last_played,
			updated_at   = now()
	`, p.UserID, p.UserName, p.TotalScore, p.GamesPlayed, highScores, achievements, p.LastPlayed)
	return err
}

func (r *ProgressRepository) TopOverall(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_name, total_score, high_scores, last_played, games_played
		FROM user_progress
		ORDER BY total_score DESC, user_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaderboard(rows, limit)
}

func (r *ProgressRepository) TopByGame(ctx context.Context, gameType string, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_name, total_score, high_scores, last_played, games_played
		FROM user_progress
		WHERE COALESCE((high_scores->>$1)::bigint, 0) > 0
		ORDER BY (high_scores->>$1)::bigint DESC, user_id ASC
		LIMIT $2
	`, gameType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaderboard(rows, limit)
}

func scanLeaderboard(rows pgx.Rows, limit int) ([]entity.LeaderboardEntry, error) {
	entries := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e entity.LeaderboardEntry
		var highScores []byte
		if err := rows.Scan(&e.UserName, &e.TotalScore, &highScores, &e.LastPlayed, &e.GamesPlayed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(highScores, &e.HighScores); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ repository.ProgressRepository = (*ProgressRepository)(nil)
