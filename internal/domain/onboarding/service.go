package onboarding

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/curable/curable/internal/domain/profile"
)

type Service struct {
	repo     Repository
	profiles profile.Repository
}

func NewService(repo Repository, profiles profile.Repository) *Service {
	return &Service{repo: repo, profiles: profiles}
}

// Complete stores the onboarding answers and updates the user's profile with
// the derived age and BMI, marking onboarding as done.
func (s *Service) Complete(ctx context.Context, o *Onboarding) error {
	if o.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if o.HeightCm != nil && *o.HeightCm <= 0 {
		return fmt.Errorf("height_cm must be positive")
	}
	if o.WeightKg != nil && *o.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}

	now := time.Now()
	o.CompletedAt = &now
	if err := s.repo.Upsert(ctx, o); err != nil {
		return fmt.Errorf("saving onboarding: %w", err)
	}

	completed := true
	p := &profile.Profile{
		ID:                  o.UserID,
		FullName:            o.FullName,
		Gender:              o.Gender,
		HeightCm:            o.HeightCm,
		WeightKg:            o.WeightKg,
		BloodGroup:          o.BloodGroup,
		OnboardingCompleted: &completed,
	}
	if o.DateOfBirth != nil {
		age := ageAt(*o.DateOfBirth, now)
		p.Age = &age
	}
	if bmi, ok := bodyMassIndex(o.HeightCm, o.WeightKg); ok {
		p.BMI = &bmi
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Onboarding, error) {
	return s.repo.GetByUser(ctx, userID)
}

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// bodyMassIndex returns weight divided by height squared, rounded to one decimal.
func bodyMassIndex(heightCm, weightKg *float64) (float64, bool) {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 {
		return 0, false
	}
	m := *heightCm / 100
	return math.Round(*weightKg/(m*m)*10) / 10, true
}
