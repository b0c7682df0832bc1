package medication

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if m.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if m.MedicationName == "" {
		return fmt.Errorf("medication_name is required")
	}
	if m.StartDate == nil {
		now := time.Now()
		m.StartDate = &now
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Medication, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, m *Medication) error {
	if m.MedicationName == "" {
		return fmt.Errorf("medication_name is required")
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *Service) ListActive(ctx context.Context, userID uuid.UUID) ([]*Medication, error) {
	return s.repo.ListActive(ctx, userID)
}

// Stop marks a medication as no longer taken by setting its end date.
func (s *Service) Stop(ctx context.Context, userID, id uuid.UUID) (*Medication, error) {
	m, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if m.EndDate != nil {
		return m, nil
	}
	now := time.Now()
	m.EndDate = &now
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
