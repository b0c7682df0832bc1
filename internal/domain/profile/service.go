package profile

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

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) Update(ctx context.Context, p *Profile) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 150) {
		return fmt.Errorf("age out of range")
	}
	if p.HeightCm != nil && *p.HeightCm <= 0 {
		return fmt.Errorf("height_cm must be positive")
	}
	if p.WeightKg != nil && *p.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}
	return s.repo.Update(ctx, p)
}
