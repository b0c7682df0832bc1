package mentalhealth

import (
	"time"

	"github.com/google/uuid"
)

// Assessment maps to the mental_health_assessments table.
type Assessment struct {
	ID                       uuid.UUID `db:"id" json:"id"`
	UserID                   uuid.UUID `db:"user_id" json:"user_id"`
	FeelingToday             *string   `db:"feeling_today" json:"feeling_today,omitempty"`
	MoodScore                *int      `db:"mood_score" json:"mood_score,omitempty"`
	ThoughtHeavinessScale    *int      `db:"thought_heaviness_scale" json:"thought_heaviness_scale,omitempty"`
	StressAnxietyOverwhelm   *bool     `db:"stress_anxiety_overwhelm" json:"stress_anxiety_overwhelm,omitempty"`
	StressAnxietyDetails     *string   `db:"stress_anxiety_details" json:"stress_anxiety_details,omitempty"`
	SleepChanges             *string   `db:"sleep_changes" json:"sleep_changes,omitempty"`
	HopelessnessLossInterest *bool     `db:"hopelessness_loss_interest" json:"hopelessness_loss_interest,omitempty"`
	HopelessnessExplanation  *string   `db:"hopelessness_explanation" json:"hopelessness_explanation,omitempty"`
	HasSupportPerson         *bool     `db:"has_support_person" json:"has_support_person,omitempty"`
	SelfHarmThoughts         *bool     `db:"self_harm_thoughts" json:"self_harm_thoughts,omitempty"`
	IsFlaggedUrgent          bool      `db:"is_flagged_urgent" json:"is_flagged_urgent"`
	CreatedAt                time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time `db:"updated_at" json:"updated_at"`
}
