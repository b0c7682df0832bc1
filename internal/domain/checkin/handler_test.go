package checkin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/curable/curable/internal/platform/auth"
)

func newTestContext(e *echo.Echo, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_SubmitDaily(t *testing.T) {
	svc, tracking, _, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	userID := uuid.New()

	body := `{"sleep_hours":7,"mood":"good","exercise_done":true}`
	c, rec := newTestContext(e, http.MethodPost, "/", body, userID)
	if err := h.SubmitDaily(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if len(tracking.entries) != 1 || tracking.entries[0].UserID != userID {
		t.Error("expected entry scoped to caller")
	}
}

func TestHandler_SubmitDaily_Invalid(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	c, _ := newTestContext(e, http.MethodPost, "/", `{"sleep_hours":-2}`, uuid.New())
	if err := h.SubmitDaily(c); err == nil {
		t.Error("expected error for invalid sleep_hours")
	}
}

func TestHandler_SubmitQuestions(t *testing.T) {
	svc, _, questions, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	body := `{"checkin_type":"daily","questions_shown":["q1","q2"],"questions_answered":{"q1":"yes"}}`
	c, rec := newTestContext(e, http.MethodPost, "/", body, uuid.New())
	if err := h.SubmitQuestions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if len(questions.rows) != 1 {
		t.Fatalf("expected 1 question row, got %d", len(questions.rows))
	}
}

func TestHandler_SubmitWeekly(t *testing.T) {
	svc, _, _, weekly := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	body := `{"week_start_date":"2026-08-24T00:00:00Z","average_sleep_hours":7.5}`
	c, rec := newTestContext(e, http.MethodPost, "/", body, uuid.New())
	if err := h.SubmitWeekly(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if len(weekly.rows) != 1 {
		t.Fatalf("expected 1 weekly row, got %d", len(weekly.rows))
	}
}

func TestHandler_Trends(t *testing.T) {
	svc, tracking, _, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	userID := uuid.New()
	tracking.entries = []*HealthTracking{
		{UserID: userID, Date: time.Now(), SleepHours: floatPtr(8)},
	}

	c, rec := newTestContext(e, http.MethodGet, "/?days=7", "", userID)
	if err := h.Trends(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"average_sleep_hours":8`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_ListDaily(t *testing.T) {
	svc, tracking, _, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	userID := uuid.New()
	tracking.entries = []*HealthTracking{{ID: uuid.New(), UserID: userID, Date: time.Now()}}

	c, rec := newTestContext(e, http.MethodGet, "/", "", userID)
	if err := h.ListDaily(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":1`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
