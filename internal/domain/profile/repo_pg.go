package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const profileCols = `id, full_name, email, age, gender, height_cm, weight_kg, bmi,
	blood_group, genotype, onboarding_completed, baseline_established, created_at, updated_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Age, &p.Gender, &p.HeightCm, &p.WeightKg, &p.BMI,
		&p.BloodGroup, &p.Genotype, &p.OnboardingCompleted, &p.BaselineEstablished, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileCols+` FROM profiles WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Profile) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET full_name=$2, email=$3, age=$4, gender=$5, height_cm=$6,
			weight_kg=$7, bmi=$8, blood_group=$9, genotype=$10, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FullName, p.Email, p.Age, p.Gender, p.HeightCm,
		p.WeightKg, p.BMI, p.BloodGroup, p.Genotype)
	return err
}

func (r *repoPG) Upsert(ctx context.Context, p *Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, full_name, email, age, gender, height_cm, weight_kg, bmi,
			blood_group, genotype, onboarding_completed, baseline_established)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			full_name=EXCLUDED.full_name, age=EXCLUDED.age, gender=EXCLUDED.gender,
			height_cm=EXCLUDED.height_cm, weight_kg=EXCLUDED.weight_kg, bmi=EXCLUDED.bmi,
			blood_group=EXCLUDED.blood_group, onboarding_completed=EXCLUDED.onboarding_completed,
			updated_at=NOW()`,
		p.ID, p.FullName, p.Email, p.Age, p.Gender, p.HeightCm, p.WeightKg, p.BMI,
		p.BloodGroup, p.Genotype, p.OnboardingCompleted, p.BaselineEstablished)
	return err
}
