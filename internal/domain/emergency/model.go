package emergency

import (
	"time"

	"github.com/google/uuid"
)

// Severity levels accepted for a check-in.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Checkin maps to the emergency_checkins table.
type Checkin struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	UserID                uuid.UUID  `db:"user_id" json:"user_id"`
	SymptomDescription    string     `db:"symptom_description" json:"symptom_description"`
	SeverityLevel         string     `db:"severity_level" json:"severity_level"`
	SymptomStartTime      *time.Time `db:"symptom_start_time" json:"symptom_start_time,omitempty"`
	GettingWorse          *bool      `db:"getting_worse" json:"getting_worse,omitempty"`
	MedicationTaken       *string    `db:"medication_taken" json:"medication_taken,omitempty"`
	WantsDoctorConnection *bool      `db:"wants_doctor_connection" json:"wants_doctor_connection,omitempty"`
	AIAssessment          *string    `db:"ai_assessment" json:"ai_assessment,omitempty"`
	UrgencyScore          int        `db:"urgency_score" json:"urgency_score"`
	CreatedAt             *time.Time `db:"created_at" json:"created_at,omitempty"`
}
