package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/curable/curable/internal/domain/checkin"
	"github.com/curable/curable/internal/domain/emergency"
	"github.com/curable/curable/internal/domain/medication"
	"github.com/curable/curable/internal/domain/mentalhealth"
	"github.com/curable/curable/internal/domain/profile"
)

// Read windows and caps for the aggregated patient context.
const (
	trackingWindowDays   = 30
	assessmentWindowDays = 180
	emergencyWindowDays  = 90
	recentTrackingCap    = 7
	previousDiagnosesCap = 10
	mentalHealthCap      = 5
	emergencyEventsCap   = 5
)

// Reader interfaces for the record-store sections the aggregator pulls from.
// The concrete domain repositories satisfy them.

type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
}

type TrackingReader interface {
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*checkin.HealthTracking, error)
}

type MedicationReader interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]*medication.Medication, error)
}

type MentalHealthReader interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*mentalhealth.Assessment, error)
}

type EmergencyReader interface {
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*emergency.Checkin, error)
}

// Sources bundles the readers the aggregator consults.
type Sources struct {
	Profiles     ProfileReader
	Tracking     TrackingReader
	Medications  MedicationReader
	MentalHealth MentalHealthReader
	Emergencies  EmergencyReader
	Assessments  Repository
}

// PatientContext is the aggregated view submitted to the model.
type Demographics struct {
	Age        *int     `json:"age"`
	Gender     *string  `json:"gender"`
	BMI        *float64 `json:"bmi"`
	BloodGroup *string  `json:"bloodGroup"`
}

type MedicationSummary struct {
	Name         string  `json:"name"`
	Dosage       *string `json:"dosage"`
	Frequency    *string `json:"frequency"`
	IsPrescribed *bool   `json:"isPrescribed"`
}

type PreviousDiagnosis struct {
	Symptoms   string    `json:"symptoms"`
	Diagnosis  string    `json:"diagnosis"`
	Conditions []string  `json:"conditions"`
	Urgency    string    `json:"urgency"`
	Date       time.Time `json:"date"`
}

type MentalHealthStatus struct {
	LatestMoodScore *int    `json:"latestMoodScore"`
	StressAnxiety   *bool   `json:"stressAnxiety"`
	SleepChanges    *string `json:"sleepChanges"`
	IsUrgent        bool    `json:"isUrgent"`
}

type EmergencyEvent struct {
	Symptoms     string     `json:"symptoms"`
	Severity     string     `json:"severity"`
	UrgencyScore int        `json:"urgencyScore"`
	Date         *time.Time `json:"date"`
}

type MedicalHistory struct {
	PreviousDiagnoses  []PreviousDiagnosis `json:"previousDiagnoses"`
	MentalHealthStatus *MentalHealthStatus `json:"mentalHealthStatus"`
	EmergencyEvents    []EmergencyEvent    `json:"emergencyEvents"`
}

type PatientContext struct {
	Demographics       Demographics              `json:"demographics"`
	CurrentSymptoms    string                    `json:"currentSymptoms"`
	RecentHealthData   []*checkin.HealthTracking `json:"recentHealthData"`
	CurrentMedications []MedicationSummary       `json:"currentMedications"`
	MedicalHistory     MedicalHistory            `json:"medicalHistory"`
}

// aggregate reads the six record-store sections concurrently and assembles
// the patient context. A failed individual read leaves its section empty;
// only all six failing together is treated as a store outage.
func aggregate(ctx context.Context, src Sources, userID uuid.UUID, symptoms string) (*PatientContext, error) {
	now := time.Now()

	var (
		prof       *profile.Profile
		tracking   []*checkin.HealthTracking
		meds       []*medication.Medication
		previous   []*SymptomAssessment
		mental     []*mentalhealth.Assessment
		emergCheck []*emergency.Checkin

		errs [6]error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prof, errs[0] = src.Profiles.GetByID(gctx, userID)
		return nil
	})
	g.Go(func() error {
		tracking, errs[1] = src.Tracking.ListSince(gctx, userID, now.AddDate(0, 0, -trackingWindowDays))
		return nil
	})
	g.Go(func() error {
		meds, errs[2] = src.Medications.ListActive(gctx, userID)
		return nil
	})
	g.Go(func() error {
		previous, errs[3] = src.Assessments.ListRecent(gctx, userID, now.AddDate(0, 0, -assessmentWindowDays), previousDiagnosesCap)
		return nil
	})
	g.Go(func() error {
		mental, errs[4] = src.MentalHealth.ListRecent(gctx, userID, mentalHealthCap)
		return nil
	})
	g.Go(func() error {
		emergCheck, errs[5] = src.Emergencies.ListSince(gctx, userID, now.AddDate(0, 0, -emergencyWindowDays), emergencyEventsCap)
		return nil
	})
	g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(errs) {
		return nil, fmt.Errorf("record store unreachable: %w", errs[0])
	}

	pc := &PatientContext{
		CurrentSymptoms:    symptoms,
		RecentHealthData:   tracking,
		CurrentMedications: make([]MedicationSummary, 0, len(meds)),
		MedicalHistory: MedicalHistory{
			PreviousDiagnoses: make([]PreviousDiagnosis, 0, len(previous)),
			EmergencyEvents:   make([]EmergencyEvent, 0, len(emergCheck)),
		},
	}
	if len(pc.RecentHealthData) > recentTrackingCap {
		pc.RecentHealthData = pc.RecentHealthData[:recentTrackingCap]
	}
	if pc.RecentHealthData == nil {
		pc.RecentHealthData = []*checkin.HealthTracking{}
	}
	if prof != nil {
		pc.Demographics = Demographics{
			Age:        prof.Age,
			Gender:     prof.Gender,
			BMI:        prof.BMI,
			BloodGroup: prof.BloodGroup,
		}
	}
	for _, m := range meds {
		pc.CurrentMedications = append(pc.CurrentMedications, MedicationSummary{
			Name:         m.MedicationName,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			IsPrescribed: m.IsPrescribed,
		})
	}
	for _, a := range previous {
		pc.MedicalHistory.PreviousDiagnoses = append(pc.MedicalHistory.PreviousDiagnoses, PreviousDiagnosis{
			Symptoms:   a.Symptoms,
			Diagnosis:  a.AIDiagnosis,
			Conditions: a.SuspectedConditions,
			Urgency:    a.UrgencyLevel,
			Date:       a.CreatedAt,
		})
	}
	if len(mental) > 0 {
		latest := mental[0]
		pc.MedicalHistory.MentalHealthStatus = &MentalHealthStatus{
			LatestMoodScore: latest.MoodScore,
			StressAnxiety:   latest.StressAnxietyOverwhelm,
			SleepChanges:    latest.SleepChanges,
			IsUrgent:        latest.IsFlaggedUrgent,
		}
	}
	for _, ec := range emergCheck {
		pc.MedicalHistory.EmergencyEvents = append(pc.MedicalHistory.EmergencyEvents, EmergencyEvent{
			Symptoms:     ec.SymptomDescription,
			Severity:     ec.SeverityLevel,
			UrgencyScore: ec.UrgencyScore,
			Date:         ec.CreatedAt,
		})
	}
	return pc, nil
}
