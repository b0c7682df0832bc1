package checkin

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HealthTracking maps to the health_tracking table; one row per user per day.
type HealthTracking struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	UserID              uuid.UUID  `db:"user_id" json:"user_id"`
	Date                time.Time  `db:"date" json:"date"`
	SleepHours          *float64   `db:"sleep_hours" json:"sleep_hours,omitempty"`
	Mood                *string    `db:"mood" json:"mood,omitempty"`
	StressLevel         *string    `db:"stress_level" json:"stress_level,omitempty"`
	ExerciseDone        *bool      `db:"exercise_done" json:"exercise_done,omitempty"`
	ExerciseIntensity   *string    `db:"exercise_intensity" json:"exercise_intensity,omitempty"`
	MedicationsTaken    *bool      `db:"medications_taken" json:"medications_taken,omitempty"`
	MenstrualPeriodDate *time.Time `db:"menstrual_period_date" json:"menstrual_period_date,omitempty"`
	NewSymptoms         []string   `db:"new_symptoms" json:"new_symptoms,omitempty"`
	PainExperienced     *bool      `db:"pain_experienced" json:"pain_experienced,omitempty"`
	PainLocation        *string    `db:"pain_location" json:"pain_location,omitempty"`
	Appetite            *string    `db:"appetite" json:"appetite,omitempty"`
	BowelMovement       *string    `db:"bowel_movement" json:"bowel_movement,omitempty"`
	UrineChanges        *string    `db:"urine_changes" json:"urine_changes,omitempty"`
	WaterIntakeCups     *int       `db:"water_intake_cups" json:"water_intake_cups,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

// DailyQuestion maps to the daily_questions table (rotating-question check-ins).
type DailyQuestion struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	UserID            uuid.UUID       `db:"user_id" json:"user_id"`
	CheckinType       *string         `db:"checkin_type" json:"checkin_type,omitempty"`
	Date              time.Time       `db:"date" json:"date"`
	QuestionsShown    []string        `db:"questions_shown" json:"questions_shown,omitempty"`
	QuestionsAnswered json.RawMessage `db:"questions_answered" json:"questions_answered,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
}

// WeeklyCheckin maps to the weekly_checkins table.
type WeeklyCheckin struct {
	ID                       uuid.UUID  `db:"id" json:"id"`
	UserID                   uuid.UUID  `db:"user_id" json:"user_id"`
	WeekStartDate            time.Time  `db:"week_start_date" json:"week_start_date"`
	AverageSleepHours        *float64   `db:"average_sleep_hours" json:"average_sleep_hours,omitempty"`
	ExerciseFrequencyPerWeek *int       `db:"exercise_frequency_per_week" json:"exercise_frequency_per_week,omitempty"`
	StressLevel              *string    `db:"stress_level" json:"stress_level,omitempty"`
	FruitVegetableFrequency  *string    `db:"fruit_vegetable_frequency" json:"fruit_vegetable_frequency,omitempty"`
	SmokingDrinkingFrequency *bool      `db:"smoking_drinking_frequency" json:"smoking_drinking_frequency,omitempty"`
	LifestyleChanges         *string    `db:"lifestyle_changes" json:"lifestyle_changes,omitempty"`
	FamilyHistoryUpdates     []string   `db:"family_history_updates" json:"family_history_updates,omitempty"`
	CompletedAt              *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt                *time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Trends summarizes tracking entries over a window for the client's charts.
type Trends struct {
	Days             int            `json:"days"`
	Entries          int            `json:"entries"`
	AverageSleep     float64        `json:"average_sleep_hours"`
	ExerciseRate     float64        `json:"exercise_rate"`
	MoodCounts       map[string]int `json:"mood_counts"`
	StressCounts     map[string]int `json:"stress_counts"`
	SymptomFrequency map[string]int `json:"symptom_frequency"`
}
