package onboarding

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curable/curable/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/onboarding", h.Complete)
	api.GET("/onboarding", h.Get)
}

func (h *Handler) Complete(c echo.Context) error {
	var o Onboarding
	if err := c.Bind(&o); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o.UserID = auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Complete(c.Request().Context(), &o); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) Get(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	o, err := h.svc.Get(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "onboarding not found")
	}
	return c.JSON(http.StatusOK, o)
}
