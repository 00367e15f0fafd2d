package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	"github.com/cybertrain-io/cybertrain/internal/domain/repository"
)

type HelplineRepository struct {
	pool *pgxpool.Pool
}

func NewHelplineRepository(pool *pgxpool.Pool) *HelplineRepository {
	return &HelplineRepository{pool: pool}
}

func (r *HelplineRepository) Create(ctx context.Context, req *entity.HelplineRequest) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO helpline_requests (name, phone_number, issue_description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, req.Name, req.PhoneNumber, req.IssueDescription)
	return row.Scan(&req.ID, &req.CreatedAt)
}

var _ repository.HelplineRepository = (*HelplineRepository)(nil)
