package application

import (
	"context"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
	repo "github.com/cybertrain-io/cybertrain/internal/domain/repository"
)

// HelplineService records support requests from the helpline form.
type HelplineService struct {
	Repo repo.HelplineRepository
}

func NewHelplineService(r repo.HelplineRepository) *HelplineService {
	return &HelplineService{Repo: r}
}

func (s *HelplineService) Submit(ctx context.Context, name, phoneNumber, issueDescription string) (*entity.HelplineRequest, error) {
	if name == "" || phoneNumber == "" || issueDescription == "" {
		return nil, ErrMissingFields
	}
	req := &entity.HelplineRequest{Name: name, PhoneNumber: phoneNumber, IssueDescription: issueDescription}
	if err := s.Repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
