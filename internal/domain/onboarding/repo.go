package onboarding

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Upsert(ctx context.Context, o *Onboarding) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*Onboarding, error)
}
