package emergency

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Checkin) error
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Checkin, int, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*Checkin, error)
}
