package mentalhealth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit stores an assessment. Reported self-harm thoughts flag the record as
// urgent, and the mood score mirrors the thought heaviness scale when the
// caller did not supply one.
func (s *Service) Submit(ctx context.Context, a *Assessment) error {
	if a.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if a.ThoughtHeavinessScale != nil && (*a.ThoughtHeavinessScale < 1 || *a.ThoughtHeavinessScale > 10) {
		return fmt.Errorf("thought_heaviness_scale must be between 1 and 10")
	}

	if a.SelfHarmThoughts != nil && *a.SelfHarmThoughts {
		a.IsFlaggedUrgent = true
	}
	if a.MoodScore == nil && a.ThoughtHeavinessScale != nil {
		score := *a.ThoughtHeavinessScale
		a.MoodScore = &score
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}
