package entity

import (
	"encoding/json"
	"time"
)

// Game types recognized by the training platform.
const (
	GameCyber             = "cyberGame"
	GameArchitecture      = "architecture"
	GameExploit           = "exploit"
	GamePenetration       = "penetration"
	GameSocialEngineering = "socialEngineering"
)

var gameTypes = map[string]struct{}{
	GameCyber:             {},
	GameArchitecture:      {},
	GameExploit:           {},
	GamePenetration:       {},
	GameSocialEngineering: {},
}

// ValidGameType reports whether gt is one of the fixed game type values.
func ValidGameType(gt string) bool {
	_, ok := gameTypes[gt]
	return ok
}

// GameSession is an immutable ledger record of one play-through.
// It is created once per save call and never mutated.
type GameSession struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	UserName            string          `json:"user_name"`
	GameType            string          `json:"game_type"`
	Score               int64           `json:"score"`
	Level               int             `json:"level"`
	TimeSpent           int64           `json:"time_spent"`
	CompletedChallenges []string        `json:"completed_challenges"`
	GameData            json.RawMessage `json:"game_data,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// UserProgress is the mutable per-user rollup derived from the session ledger.
// TotalScore and GamesPlayed only ever grow; HighScores only improve.
type UserProgress struct {
	UserID       string           `json:"user_id"`
	UserName     string           `json:"user_name"`
	TotalScore   int64            `json:"total_score"`
	GamesPlayed  int              `json:"games_played"`
	HighScores   map[string]int64 `json:"high_scores"`
	Achievements []string         `json:"achievements"`
	LastPlayed   time.Time        `json:"last_played"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewUserProgress returns a zero-valued aggregate for the given user.
func NewUserProgress(userID, userName string) *UserProgress {
	return &UserProgress{
		UserID:       userID,
		UserName:     userName,
		HighScores:   map[string]int64{},
		Achievements: []string{},
	}
}

// ApplySession folds one session into the aggregate: play count +1, total
// score += session score, and the per-type high score replaced only on a
// strict improvement.
func (p *UserProgress) ApplySession(s *GameSession) {
	p.GamesPlayed++
	p.TotalScore += s.Score
	p.LastPlayed = s.CreatedAt
	if p.HighScores == nil {
		p.HighScores = map[string]int64{}
	}
	if s.Score > p.HighScores[s.GameType] {
		p.HighScores[s.GameType] = s.Score
	}
}

// LeaderboardEntry is one ranked row of a leaderboard response.
type LeaderboardEntry struct {
	UserName    string           `json:"user_name"`
	TotalScore  int64            `json:"total_score"`
	HighScores  map[string]int64 `json:"high_scores"`
	LastPlayed  time.Time        `json:"last_played"`
	GamesPlayed int              `json:"games_played"`
}
