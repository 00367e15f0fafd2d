package repository

import (
	"context"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
)

// HelplineRepository persists helpline support requests.
type HelplineRepository interface {
	Create(ctx context.Context, r *entity.HelplineRequest) error
}
