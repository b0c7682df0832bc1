package onboarding

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const onboardingCols = `id, user_id, full_name, date_of_birth, gender, height_cm, weight_kg,
	blood_group, location, smoker, alcohol_drinker, chronic_conditions, family_history,
	long_term_medications, completed_at, created_at, updated_at`

func scanOnboarding(row pgx.Row) (*Onboarding, error) {
	var o Onboarding
	err := row.Scan(&o.ID, &o.UserID, &o.FullName, &o.DateOfBirth, &o.Gender, &o.HeightCm, &o.WeightKg,
		&o.BloodGroup, &o.Location, &o.Smoker, &o.AlcoholDrinker, &o.ChronicConditions, &o.FamilyHistory,
		&o.LongTermMedications, &o.CompletedAt, &o.CreatedAt, &o.UpdatedAt)
	return &o, err
}

func (r *repoPG) Upsert(ctx context.Context, o *Onboarding) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO onboarding (id, user_id, full_name, date_of_birth, gender, height_cm, weight_kg,
			blood_group, location, smoker, alcohol_drinker, chronic_conditions, family_history,
			long_term_medications, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name=EXCLUDED.full_name, date_of_birth=EXCLUDED.date_of_birth,
			gender=EXCLUDED.gender, height_cm=EXCLUDED.height_cm, weight_kg=EXCLUDED.weight_kg,
			blood_group=EXCLUDED.blood_group, location=EXCLUDED.location, smoker=EXCLUDED.smoker,
			alcohol_drinker=EXCLUDED.alcohol_drinker, chronic_conditions=EXCLUDED.chronic_conditions,
			family_history=EXCLUDED.family_history, long_term_medications=EXCLUDED.long_term_medications,
			completed_at=EXCLUDED.completed_at, updated_at=NOW()`,
		o.ID, o.UserID, o.FullName, o.DateOfBirth, o.Gender, o.HeightCm, o.WeightKg,
		o.BloodGroup, o.Location, o.Smoker, o.AlcoholDrinker, o.ChronicConditions, o.FamilyHistory,
		o.LongTermMedications, o.CompletedAt)
	return err
}

func (r *repoPG) GetByUser(ctx context.Context, userID uuid.UUID) (*Onboarding, error) {
	return scanOnboarding(r.pool.QueryRow(ctx, `SELECT `+onboardingCols+` FROM onboarding WHERE user_id = $1`, userID))
}
