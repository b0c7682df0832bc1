package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *SymptomAssessment) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*SymptomAssessment, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*SymptomAssessment, int, error)
	ListRecent(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*SymptomAssessment, error)
}
