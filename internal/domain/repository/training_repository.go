package repository

import (
	"context"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
)

// SessionRepository is the append-only game session ledger.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.GameSession) error
	// ListRecent returns up to limit sessions for the user, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]entity.GameSession, error)
}

// ProgressRepository stores the per-user aggregate derived from the ledger.
type ProgressRepository interface {
	Get(ctx context.Context, userID string) (*entity.UserProgress, error)
	// Upsert writes the full aggregate row, last writer wins.
	Upsert(ctx context.Context, p *entity.UserProgress) error
	// TopOverall ranks by total score descending, user id ascending on ties.
	TopOverall(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	// TopByGame ranks users with a positive high score for gameType by that
	// score descending, user id ascending on ties.
	TopByGame(ctx context.Context, gameType string, limit int) ([]entity.LeaderboardEntry, error)
}
