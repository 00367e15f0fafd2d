package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
)

type fakeHelplineRepo struct {
	requests []entity.HelplineRequest
}

func (f *fakeHelplineRepo) Create(_ context.Context, r *entity.HelplineRequest) error {
	r.ID = "h-1"
	f.requests = append(f.requests, *r)
	return nil
}

func TestHelplineSubmit(t *testing.T) {
	repo := &fakeHelplineRepo{}
	svc := NewHelplineService(repo)

	r, err := svc.Submit(context.Background(), "alice", "+4712345678", "phishing email received")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	require.Len(t, repo.requests, 1)
	assert.Equal(t, "phishing email received", repo.requests[0].IssueDescription)
}

func TestHelplineSubmitMissingFields(t *testing.T) {
	repo := &fakeHelplineRepo{}
	svc := NewHelplineService(repo)

	cases := [][3]string{
		{"", "+4712345678", "issue"},
		{"alice", "", "issue"},
		{"alice", "+4712345678", ""},
	}
	for _, c := range cases {
		_, err := svc.Submit(context.Background(), c[0], c[1], c[2])
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Empty(t, repo.requests)
}
