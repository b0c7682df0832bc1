package onboarding

import (
	"time"

	"github.com/google/uuid"
)

// Onboarding maps to the onboarding table; one row per user.
type Onboarding struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	UserID              uuid.UUID  `db:"user_id" json:"user_id"`
	FullName            *string    `db:"full_name" json:"full_name,omitempty"`
	DateOfBirth         *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender              *string    `db:"gender" json:"gender,omitempty"`
	HeightCm            *float64   `db:"height_cm" json:"height_cm,omitempty"`
	WeightKg            *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	BloodGroup          *string    `db:"blood_group" json:"blood_group,omitempty"`
	Location            *string    `db:"location" json:"location,omitempty"`
	Smoker              *bool      `db:"smoker" json:"smoker,omitempty"`
	AlcoholDrinker      *bool      `db:"alcohol_drinker" json:"alcohol_drinker,omitempty"`
	ChronicConditions   []string   `db:"chronic_conditions" json:"chronic_conditions,omitempty"`
	FamilyHistory       []string   `db:"family_history" json:"family_history,omitempty"`
	LongTermMedications []string   `db:"long_term_medications" json:"long_term_medications,omitempty"`
	CompletedAt         *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt           *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt           *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
