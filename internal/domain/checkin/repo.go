package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TrackingRepository interface {
	Upsert(ctx context.Context, t *HealthTracking) error
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*HealthTracking, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthTracking, int, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, q *DailyQuestion) error
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*DailyQuestion, int, error)
}

type WeeklyRepository interface {
	Upsert(ctx context.Context, w *WeeklyCheckin) error
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*WeeklyCheckin, int, error)
}
