package assessment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/curable/curable/internal/platform/ai"
	"github.com/curable/curable/internal/platform/auth"
	"github.com/curable/curable/pkg/pagination"
)

// ErrSymptomsRequired rejects a diagnose request with an empty symptom text.
var ErrSymptomsRequired = errors.New("symptoms is required")

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments/diagnose", h.Diagnose)
	api.GET("/assessments", h.List)
	api.GET("/assessments/:id", h.Get)
}

type diagnoseRequest struct {
	Symptoms string `json:"symptoms"`
}

type diagnoseResponse struct {
	Success    bool            `json:"success"`
	Assessment *DiagnoseResult `json:"assessment"`
}

type diagnoseError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Diagnose keeps the envelope the mobile clients already parse, so it
// answers with success/error bodies instead of the shared error shape.
func (h *Handler) Diagnose(c echo.Context) error {
	ctx := c.Request().Context()
	userID := auth.UserIDFromContext(ctx)

	var req diagnoseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, diagnoseError{Error: "invalid request body"})
	}

	res, err := h.svc.Diagnose(ctx, userID, req.Symptoms)
	if err != nil {
		if errors.Is(err, ErrSymptomsRequired) {
			return c.JSON(http.StatusBadRequest, diagnoseError{Error: ErrSymptomsRequired.Error()})
		}
		status := http.StatusInternalServerError
		if errors.Is(err, ai.ErrTimeout) {
			status = http.StatusGatewayTimeout
		}
		return c.JSON(status, diagnoseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, diagnoseResponse{Success: true, Assessment: res})
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID := auth.UserIDFromContext(ctx)
	params := pagination.FromContext(c)

	items, total, err := h.svc.List(ctx, userID, params.Limit, params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list assessments")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, params.Limit, params.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	userID := auth.UserIDFromContext(ctx)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid assessment id")
	}
	a, err := h.svc.Get(ctx, userID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}
