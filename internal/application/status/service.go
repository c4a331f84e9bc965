package status

import (
	"context"

	"github.com/google/uuid"

	"github.com/Prasun6736/Ai-image-Checker/internal/application"
	domain "github.com/Prasun6736/Ai-image-Checker/internal/domain/status"
)

// listCap mirrors the historical cap on returned status checks.
const listCap = 1000

// Service implements the status-check use cases. Pass-through persistence.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

func (s *Service) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		ID:         domain.StatusID(uuid.New().String()),
		ClientName: clientName,
		Timestamp:  s.Clock.Now().UTC(),
	}
	if err := s.Repo.Save(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.StatusCheck, error) {
	return s.Repo.List(ctx, listCap)
}
