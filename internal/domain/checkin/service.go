package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	tracking  TrackingRepository
	questions QuestionRepository
	weekly    WeeklyRepository
}

func NewService(tracking TrackingRepository, questions QuestionRepository, weekly WeeklyRepository) *Service {
	return &Service{tracking: tracking, questions: questions, weekly: weekly}
}

// SubmitDaily records a tracking entry for the given day. A repeat submission
// for the same day replaces the earlier one.
func (s *Service) SubmitDaily(ctx context.Context, t *HealthTracking) error {
	if t.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if t.Date.IsZero() {
		t.Date = time.Now().Truncate(24 * time.Hour)
	}
	if t.SleepHours != nil && (*t.SleepHours < 0 || *t.SleepHours > 24) {
		return fmt.Errorf("sleep_hours out of range")
	}
	if t.WaterIntakeCups != nil && *t.WaterIntakeCups < 0 {
		return fmt.Errorf("water_intake_cups must not be negative")
	}
	return s.tracking.Upsert(ctx, t)
}

func (s *Service) ListDaily(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthTracking, int, error) {
	return s.tracking.List(ctx, userID, limit, offset)
}

func (s *Service) SubmitQuestions(ctx context.Context, q *DailyQuestion) error {
	if q.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if len(q.QuestionsShown) == 0 {
		return fmt.Errorf("questions_shown is required")
	}
	if q.Date.IsZero() {
		q.Date = time.Now().Truncate(24 * time.Hour)
	}
	return s.questions.Create(ctx, q)
}

func (s *Service) ListQuestions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*DailyQuestion, int, error) {
	return s.questions.List(ctx, userID, limit, offset)
}

// SubmitWeekly records a weekly check-in keyed by the week's start date.
func (s *Service) SubmitWeekly(ctx context.Context, w *WeeklyCheckin) error {
	if w.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if w.WeekStartDate.IsZero() {
		return fmt.Errorf("week_start_date is required")
	}
	if w.AverageSleepHours != nil && (*w.AverageSleepHours < 0 || *w.AverageSleepHours > 24) {
		return fmt.Errorf("average_sleep_hours out of range")
	}
	if w.CompletedAt == nil {
		now := time.Now()
		w.CompletedAt = &now
	}
	return s.weekly.Upsert(ctx, w)
}

func (s *Service) ListWeekly(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*WeeklyCheckin, int, error) {
	return s.weekly.List(ctx, userID, limit, offset)
}

// Trends aggregates the user's tracking entries over the last N days.
func (s *Service) Trends(ctx context.Context, userID uuid.UUID, days int) (*Trends, error) {
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		days = 365
	}
	since := time.Now().AddDate(0, 0, -days)
	entries, err := s.tracking.ListSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("loading tracking entries: %w", err)
	}

	tr := &Trends{
		Days:             days,
		Entries:          len(entries),
		MoodCounts:       map[string]int{},
		StressCounts:     map[string]int{},
		SymptomFrequency: map[string]int{},
	}
	var sleepSum float64
	var sleepCount, exercised int
	for _, e := range entries {
		if e.SleepHours != nil {
			sleepSum += *e.SleepHours
			sleepCount++
		}
		if e.ExerciseDone != nil && *e.ExerciseDone {
			exercised++
		}
		if e.Mood != nil && *e.Mood != "" {
			tr.MoodCounts[*e.Mood]++
		}
		if e.StressLevel != nil && *e.StressLevel != "" {
			tr.StressCounts[*e.StressLevel]++
		}
		for _, sym := range e.NewSymptoms {
			if sym != "" {
				tr.SymptomFrequency[sym]++
			}
		}
	}
	if sleepCount > 0 {
		tr.AverageSleep = sleepSum / float64(sleepCount)
	}
	if len(entries) > 0 {
		tr.ExerciseRate = float64(exercised) / float64(len(entries))
	}
	return tr, nil
}
