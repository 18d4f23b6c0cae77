package templates

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smartdoc/smartdoc/internal/platform/auth"
	"github.com/smartdoc/smartdoc/pkg/pagination"
)

// Handler provides HTTP handlers for medication templates.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/templates", h.Create)
	api.POST("/templates/:id/use", h.Use)
	api.GET("/templates/search", h.Search)
	api.GET("/templates/popular", h.Popular)
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

	var t MedicationTemplate
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Create(c.Request().Context(), doctorID, &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) Use(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	result, err := h.svc.Use(c.Request().Context(), doctorID, id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, result)
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusNotFound, "template not found")
	}
}

func (h *Handler) Search(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.Search(c.Request().Context(), doctorID,
		c.QueryParam("q"), c.QueryParam("category"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Popular(c echo.Context) error {
	items, err := h.svc.Popular(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
