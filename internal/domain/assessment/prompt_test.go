package assessment

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	age := 24
	pc := &PatientContext{
		Demographics:    Demographics{Age: &age},
		CurrentSymptoms: "fever and headache",
		MedicalHistory: MedicalHistory{
			PreviousDiagnoses: []PreviousDiagnosis{},
			EmergencyEvents:   []EmergencyEvent{},
		},
	}

	prompt, err := buildPrompt(pc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Nigerian medical doctor AI",
		"PATIENT CONTEXT:",
		`"currentSymptoms": "fever and headache"`,
		`"mentalHealthStatus": null`,
		"INSTRUCTIONS:",
		`"confidence_score": 0-100`,
		`"urgency_level": "low | medium | high"`,
		`"ask_more"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	pc := &PatientContext{CurrentSymptoms: "cough"}
	a, err := buildPrompt(pc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := buildPrompt(pc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Error("same context must render the same prompt")
	}
}
