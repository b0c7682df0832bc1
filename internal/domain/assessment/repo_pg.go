package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const assessmentCols = `id, user_id, symptoms, ai_diagnosis, suspected_conditions,
	recommendations, confidence_score, urgency_level, doctor_reviewed, created_at`

func scanAssessment(row pgx.Row) (*SymptomAssessment, error) {
	var a SymptomAssessment
	err := row.Scan(&a.ID, &a.UserID, &a.Symptoms, &a.AIDiagnosis, &a.SuspectedConditions,
		&a.Recommendations, &a.ConfidenceScore, &a.UrgencyLevel, &a.DoctorReviewed, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *SymptomAssessment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO symptom_assessments (id, user_id, symptoms, ai_diagnosis, suspected_conditions,
			recommendations, confidence_score, urgency_level, doctor_reviewed)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`,
		a.ID, a.UserID, a.Symptoms, a.AIDiagnosis, a.SuspectedConditions,
		a.Recommendations, a.ConfidenceScore, a.UrgencyLevel, a.DoctorReviewed).Scan(&a.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, userID, id uuid.UUID) (*SymptomAssessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM symptom_assessments WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*SymptomAssessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM symptom_assessments WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM symptom_assessments
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*SymptomAssessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListRecent(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*SymptomAssessment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM symptom_assessments
		WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at DESC LIMIT $3`, userID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*SymptomAssessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
