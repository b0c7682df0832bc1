package assessment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/curable/curable/internal/platform/ai"
)

// Assessor produces a structured assessment for a rendered prompt.
type Assessor interface {
	Assess(ctx context.Context, prompt string) (*ai.Result, error)
}

type Service struct {
	src   Sources
	model Assessor
}

func NewService(src Sources, model Assessor) *Service {
	return &Service{src: src, model: model}
}

// Diagnose runs the full pipeline for one symptom report: aggregate the
// user's records, render the prompt, call the model once, persist the
// assessment, then return it. The row is written before the caller sees
// the result, so every answer shown to a user exists in history.
func (s *Service) Diagnose(ctx context.Context, userID uuid.UUID, symptoms string) (*DiagnoseResult, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return nil, ErrSymptomsRequired
	}

	pc, err := aggregate(ctx, s.src, userID, symptoms)
	if err != nil {
		return nil, fmt.Errorf("gathering patient context: %w", err)
	}

	prompt, err := buildPrompt(pc)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}

	res, err := s.model.Assess(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("getting AI diagnosis: %w", err)
	}

	row := &SymptomAssessment{
		UserID:              userID,
		Symptoms:            symptoms,
		AIDiagnosis:         res.Summary,
		SuspectedConditions: res.SuspectedConditions,
		Recommendations:     res.Recommendations,
		ConfidenceScore:     res.ConfidenceScore,
		UrgencyLevel:        res.UrgencyLevel,
		DoctorReviewed:      false,
	}
	if err := s.src.Assessments.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("saving assessment: %w", err)
	}

	return &DiagnoseResult{
		ID:                  row.ID,
		Symptoms:            row.Symptoms,
		AIDiagnosis:         row.AIDiagnosis,
		SuspectedConditions: row.SuspectedConditions,
		Recommendations:     row.Recommendations,
		ConfidenceScore:     row.ConfidenceScore,
		UrgencyLevel:        row.UrgencyLevel,
		RedFlags:            res.RedFlags,
		FollowUpTimeline:    res.FollowUpTimeline,
		CreatedAt:           row.CreatedAt,
	}, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*SymptomAssessment, error) {
	return s.src.Assessments.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*SymptomAssessment, int, error) {
	return s.src.Assessments.List(ctx, userID, limit, offset)
}
