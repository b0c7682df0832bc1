package mentalhealth

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Assessment) error
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Assessment, int, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*Assessment, error)
}
