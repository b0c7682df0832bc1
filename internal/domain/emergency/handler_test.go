package emergency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/curable/curable/internal/platform/auth"
)

func newTestContext(e *echo.Echo, method, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Submit(t *testing.T) {
	repo := &mockRepo{}
	h := NewHandler(NewService(repo))
	e := echo.New()

	body := `{"symptom_description":"severe chest pain","severity_level":"severe","getting_worse":true}`
	c, rec := newTestContext(e, http.MethodPost, body, uuid.New())
	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"urgency_score":9`) {
		t.Errorf("expected urgency score 9 in response: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "URGENT") {
		t.Errorf("expected triage note in response: %s", rec.Body.String())
	}
}

func TestHandler_Submit_Invalid(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))
	e := echo.New()

	c, _ := newTestContext(e, http.MethodPost, `{"severity_level":"mild"}`, uuid.New())
	if err := h.Submit(c); err == nil {
		t.Error("expected error for missing symptom description")
	}
}

func TestHandler_List(t *testing.T) {
	repo := &mockRepo{}
	h := NewHandler(NewService(repo))
	e := echo.New()
	userID := uuid.New()
	repo.rows = []*Checkin{{ID: uuid.New(), UserID: userID, SymptomDescription: "pain", SeverityLevel: SeverityMild}}

	c, rec := newTestContext(e, http.MethodGet, "", userID)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":1`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
