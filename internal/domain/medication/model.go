package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication maps to the medications table. A NULL end_date means the
// medication is currently being taken.
type Medication struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         uuid.UUID  `db:"user_id" json:"user_id"`
	MedicationName string     `db:"medication_name" json:"medication_name"`
	Dosage         *string    `db:"dosage" json:"dosage,omitempty"`
	Frequency      *string    `db:"frequency" json:"frequency,omitempty"`
	IsPrescribed   *bool      `db:"is_prescribed" json:"is_prescribed,omitempty"`
	StartDate      *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
