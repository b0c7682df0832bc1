package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile maps to the profiles table. The row id equals the auth subject.
type Profile struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	FullName            *string    `db:"full_name" json:"full_name,omitempty"`
	Email               *string    `db:"email" json:"email,omitempty"`
	Age                 *int       `db:"age" json:"age,omitempty"`
	Gender              *string    `db:"gender" json:"gender,omitempty"`
	HeightCm            *float64   `db:"height_cm" json:"height_cm,omitempty"`
	WeightKg            *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	BMI                 *float64   `db:"bmi" json:"bmi,omitempty"`
	BloodGroup          *string    `db:"blood_group" json:"blood_group,omitempty"`
	Genotype            *string    `db:"genotype" json:"genotype,omitempty"`
	OnboardingCompleted *bool      `db:"onboarding_completed" json:"onboarding_completed,omitempty"`
	BaselineEstablished *bool      `db:"baseline_established" json:"baseline_established,omitempty"`
	CreatedAt           *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt           *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
