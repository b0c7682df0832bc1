package emergency

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

// Submit stores a check-in with its computed urgency score and triage note.
func (s *Service) Submit(ctx context.Context, c *Checkin) error {
	if c.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if c.SymptomDescription == "" {
		return fmt.Errorf("symptom_description is required")
	}
	switch c.SeverityLevel {
	case SeverityMild, SeverityModerate, SeveritySevere:
	default:
		return fmt.Errorf("severity_level must be mild, moderate or severe")
	}

	c.UrgencyScore = urgencyScore(c, time.Now())
	note := triageNote(c.SeverityLevel)
	c.AIAssessment = &note
	return s.repo.Create(ctx, c)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Checkin, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

// urgencyScore weighs severity, trajectory and onset recency on a 1-10 scale.
func urgencyScore(c *Checkin, now time.Time) int {
	score := 1
	switch c.SeverityLevel {
	case SeveritySevere:
		score += 6
	case SeverityModerate:
		score += 3
	default:
		score += 1
	}
	if c.GettingWorse != nil && *c.GettingWorse {
		score += 2
	}
	if c.SymptomStartTime != nil && now.Sub(*c.SymptomStartTime) < 6*time.Hour {
		score++
	}
	if score > 10 {
		score = 10
	}
	return score
}

func triageNote(severity string) string {
	switch severity {
	case SeveritySevere:
		return "URGENT: Severe symptoms detected. Recommend immediate medical attention."
	case SeverityModerate:
		return "MODERATE: Symptoms warrant medical consultation within 24 hours."
	default:
		return "MILD: Monitor symptoms. Consider telemedicine consultation if symptoms persist."
	}
}
