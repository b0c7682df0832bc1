package emergency

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curable/curable/internal/platform/auth"
	"github.com/curable/curable/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/emergency-checkins", h.Submit)
	api.GET("/emergency-checkins", h.List)
}

func (h *Handler) Submit(c echo.Context) error {
	var ec Checkin
	if err := c.Bind(&ec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ec.UserID = auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Submit(c.Request().Context(), &ec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, ec)
}

func (h *Handler) List(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
