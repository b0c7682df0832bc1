package assessment

import (
	"time"

	"github.com/google/uuid"
)

// SymptomAssessment maps to the symptom_assessments table. Rows are append
// only: every pipeline run adds a new one, and doctor review happens later.
type SymptomAssessment struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	UserID              uuid.UUID `db:"user_id" json:"user_id"`
	Symptoms            string    `db:"symptoms" json:"symptoms"`
	AIDiagnosis         string    `db:"ai_diagnosis" json:"ai_diagnosis"`
	SuspectedConditions []string  `db:"suspected_conditions" json:"suspected_conditions"`
	Recommendations     []string  `db:"recommendations" json:"recommendations"`
	ConfidenceScore     int       `db:"confidence_score" json:"confidence_score"`
	UrgencyLevel        string    `db:"urgency_level" json:"urgency_level"`
	DoctorReviewed      bool      `db:"doctor_reviewed" json:"doctor_reviewed"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// DiagnoseResult is the caller-facing view of a completed pipeline run. It
// carries fields the model returned that are not persisted (red flags,
// follow-up timeline) alongside the stored row.
type DiagnoseResult struct {
	ID                  uuid.UUID `json:"id"`
	Symptoms            string    `json:"symptoms"`
	AIDiagnosis         string    `json:"ai_diagnosis"`
	SuspectedConditions []string  `json:"suspected_conditions"`
	Recommendations     []string  `json:"recommendations"`
	ConfidenceScore     int       `json:"confidence_score"`
	UrgencyLevel        string    `json:"urgency_level"`
	RedFlags            []string  `json:"red_flags"`
	FollowUpTimeline    string    `json:"follow_up_timeline"`
	CreatedAt           time.Time `json:"created_at"`
}
