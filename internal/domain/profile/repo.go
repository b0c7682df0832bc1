package profile

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Upsert(ctx context.Context, p *Profile) error
}
