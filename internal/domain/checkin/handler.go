package checkin

import (
	"net/http"
	"strconv"

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
	api.POST("/checkins/daily", h.SubmitDaily)
	api.GET("/checkins/daily", h.ListDaily)
	api.POST("/checkins/questions", h.SubmitQuestions)
	api.GET("/checkins/questions", h.ListQuestions)
	api.POST("/checkins/weekly", h.SubmitWeekly)
	api.GET("/checkins/weekly", h.ListWeekly)
	api.GET("/checkins/trends", h.Trends)
}

func (h *Handler) SubmitDaily(c echo.Context) error {
	var t HealthTracking
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t.UserID = auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.SubmitDaily(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListDaily(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListDaily(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) SubmitQuestions(c echo.Context) error {
	var q DailyQuestion
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	q.UserID = auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.SubmitQuestions(c.Request().Context(), &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, q)
}

func (h *Handler) ListQuestions(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListQuestions(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) SubmitWeekly(c echo.Context) error {
	var w WeeklyCheckin
	if err := c.Bind(&w); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	w.UserID = auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.SubmitWeekly(c.Request().Context(), &w); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *Handler) ListWeekly(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListWeekly(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Trends(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	days, _ := strconv.Atoi(c.QueryParam("days"))
	tr, err := h.svc.Trends(c.Request().Context(), userID, days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tr)
}
