package prescriptions

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smartdoc/smartdoc/internal/platform/auth"
	"github.com/smartdoc/smartdoc/pkg/pagination"
)

// Handler provides HTTP handlers for prescriptions.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/prescriptions", h.Create)
	api.GET("/prescriptions", h.List)
	api.GET("/prescriptions/:id", h.Get)
	api.PUT("/prescriptions/:id/status", h.UpdateStatus)
}

func (h *Handler) doctorID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.DoctorIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}

func (h *Handler) Create(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.Create(c.Request().Context(), doctorID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Get(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := h.svc.Get(c.Request().Context(), doctorID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) List(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var patientID *uuid.UUID
	if s := c.QueryParam("patient_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		patientID = &id
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), doctorID, patientID, c.QueryParam("status"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.UpdateStatus(c.Request().Context(), doctorID, id, req.Status)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, p)
	case errors.Is(err, ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		if _, ok := statusTransitions[req.Status]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
}
