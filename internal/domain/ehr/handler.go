package ehr

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smartdoc/smartdoc/internal/platform/auth"
	"github.com/smartdoc/smartdoc/pkg/pagination"
)

// Handler provides HTTP handlers for EHR integration.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/ehr/providers", h.Providers)
	api.POST("/ehr/configure", h.Configure)
	api.GET("/ehr/configurations", h.ListConfigs)
	api.DELETE("/ehr/configurations/:id", h.DeleteConfig)
	api.GET("/ehr/configurations/:id/tests", h.ConnectionHistory)
	api.POST("/ehr/test-connection", h.TestConnection)
	api.POST("/ehr/submit", h.Submit)
	api.GET("/ehr/submissions", h.ListSubmissions)
	api.POST("/ehr/submissions/:id/retry", h.Retry)
}

func (h *Handler) doctorID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.DoctorIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}

func (h *Handler) Providers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Providers())
}

func (h *Handler) Configure(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var req ConfigureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cfg, err := h.svc.Configure(c.Request().Context(), doctorID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cfg)
}

func (h *Handler) ListConfigs(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	items, err := h.svc.ListConfigs(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteConfig(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.DeleteConfig(c.Request().Context(), doctorID, id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "configuration not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ConnectionHistory(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	tests, err := h.svc.ConnectionHistory(c.Request().Context(), doctorID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "configuration not found")
	}
	return c.JSON(http.StatusOK, tests)
}

func (h *Handler) TestConnection(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var req struct {
		ConfigID uuid.UUID `json:"config_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	test, err := h.svc.TestConnection(c.Request().Context(), doctorID, req.ConfigID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "configuration not found")
	}
	return c.JSON(http.StatusOK, test)
}

func (h *Handler) Submit(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.svc.Submit(c.Request().Context(), doctorID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *Handler) ListSubmissions(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListSubmissions(c.Request().Context(), doctorID, c.QueryParam("status"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Retry(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	sub, err := h.svc.Retry(c.Request().Context(), doctorID, id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, sub)
	case errors.Is(err, ErrNotRetryable):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusNotFound, "submission not found")
	}
}
