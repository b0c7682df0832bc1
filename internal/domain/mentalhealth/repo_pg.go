package mentalhealth

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const assessmentCols = `id, user_id, feeling_today, mood_score, thought_heaviness_scale,
	stress_anxiety_overwhelm, stress_anxiety_details, sleep_changes,
	hopelessness_loss_interest, hopelessness_explanation, has_support_person,
	self_harm_thoughts, is_flagged_urgent, created_at, updated_at`

func scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.UserID, &a.FeelingToday, &a.MoodScore, &a.ThoughtHeavinessScale,
		&a.StressAnxietyOverwhelm, &a.StressAnxietyDetails, &a.SleepChanges,
		&a.HopelessnessLossInterest, &a.HopelessnessExplanation, &a.HasSupportPerson,
		&a.SelfHarmThoughts, &a.IsFlaggedUrgent, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO mental_health_assessments (id, user_id, feeling_today, mood_score,
			thought_heaviness_scale, stress_anxiety_overwhelm, stress_anxiety_details,
			sleep_changes, hopelessness_loss_interest, hopelessness_explanation,
			has_support_person, self_harm_thoughts, is_flagged_urgent)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		a.ID, a.UserID, a.FeelingToday, a.MoodScore,
		a.ThoughtHeavinessScale, a.StressAnxietyOverwhelm, a.StressAnxietyDetails,
		a.SleepChanges, a.HopelessnessLossInterest, a.HopelessnessExplanation,
		a.HasSupportPerson, a.SelfHarmThoughts, a.IsFlaggedUrgent)
	return err
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM mental_health_assessments WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM mental_health_assessments
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*Assessment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentCols+` FROM mental_health_assessments
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
