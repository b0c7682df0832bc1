package emergency

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	rows []*Checkin
}

func (m *mockRepo) Create(_ context.Context, c *Checkin) error {
	c.ID = uuid.New()
	now := time.Now()
	c.CreatedAt = &now
	m.rows = append(m.rows, c)
	return nil
}

func (m *mockRepo) List(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Checkin, int, error) {
	var result []*Checkin
	for _, c := range m.rows {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) ListSince(_ context.Context, userID uuid.UUID, since time.Time, limit int) ([]*Checkin, error) {
	result, _, _ := m.List(context.Background(), userID, limit, 0)
	return result, nil
}

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

func TestService_Submit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	c := &Checkin{UserID: uuid.New(), SymptomDescription: "chest pain", SeverityLevel: SeveritySevere}
	if err := svc.Submit(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.UrgencyScore != 7 {
		t.Errorf("expected urgency 7 for severe, got %d", c.UrgencyScore)
	}
	if c.AIAssessment == nil || *c.AIAssessment == "" {
		t.Error("expected triage note to be set")
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 check-in, got %d", len(repo.rows))
	}
}

func TestService_Submit_InvalidSeverity(t *testing.T) {
	svc := NewService(&mockRepo{})
	c := &Checkin{UserID: uuid.New(), SymptomDescription: "pain", SeverityLevel: "critical"}
	if err := svc.Submit(context.Background(), c); err == nil {
		t.Error("expected error for unknown severity level")
	}
}

func TestService_Submit_RequiresDescription(t *testing.T) {
	svc := NewService(&mockRepo{})
	c := &Checkin{UserID: uuid.New(), SeverityLevel: SeverityMild}
	if err := svc.Submit(context.Background(), c); err == nil {
		t.Error("expected error for empty symptom description")
	}
}

func TestUrgencyScore(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		c    Checkin
		want int
	}{
		{"mild", Checkin{SeverityLevel: SeverityMild}, 2},
		{"moderate", Checkin{SeverityLevel: SeverityModerate}, 4},
		{"severe", Checkin{SeverityLevel: SeveritySevere}, 7},
		{"severe getting worse", Checkin{SeverityLevel: SeveritySevere, GettingWorse: boolPtr(true)}, 9},
		{
			"severe worse recent onset capped",
			Checkin{SeverityLevel: SeveritySevere, GettingWorse: boolPtr(true), SymptomStartTime: timePtr(now.Add(-2 * time.Hour))},
			10,
		},
		{
			"moderate recent onset",
			Checkin{SeverityLevel: SeverityModerate, SymptomStartTime: timePtr(now.Add(-3 * time.Hour))},
			5,
		},
		{
			"moderate old onset",
			Checkin{SeverityLevel: SeverityModerate, SymptomStartTime: timePtr(now.Add(-48 * time.Hour))},
			4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := urgencyScore(&tt.c, now); got != tt.want {
				t.Errorf("urgencyScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTriageNote(t *testing.T) {
	if got := triageNote(SeveritySevere); got[:6] != "URGENT" {
		t.Errorf("unexpected severe note: %q", got)
	}
	if got := triageNote(SeverityModerate); got[:8] != "MODERATE" {
		t.Errorf("unexpected moderate note: %q", got)
	}
	if got := triageNote(SeverityMild); got[:4] != "MILD" {
		t.Errorf("unexpected mild note: %q", got)
	}
}
