package patients

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smartdoc/smartdoc/internal/platform/auth"
	"github.com/smartdoc/smartdoc/pkg/pagination"
)

// Handler provides HTTP handlers for patients and visits.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all patient and visit routes on the
// authenticated API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients", h.CreatePatient)
	api.POST("/patients/save", h.SavePatient)
	api.GET("/patients/my-patients", h.MyPatients)
	api.GET("/patients/search", h.SearchByCode)
	api.GET("/patients/search-by-name", h.SearchByName)
	api.GET("/patients/stats", h.GetStats)
	api.GET("/patients/:id", h.GetDetails)
	api.POST("/patients/:id/visits", h.AddVisit)
	api.GET("/visits/search", h.SearchVisits)
}

func (h *Handler) doctorID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.DoctorIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}

func (h *Handler) CreatePatient(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.DoctorID = doctorID

	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) SavePatient(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.DoctorID = doctorID

	if err := h.svc.SavePatient(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) MyPatients(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByDoctor(c.Request().Context(), doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) SearchByCode(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code query parameter is required")
	}

	p, err := h.svc.GetByCode(c.Request().Context(), doctorID, code)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) SearchByName(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.SearchByName(c.Request().Context(), doctorID, c.QueryParam("q"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetDetails(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	details, err := h.svc.GetDetails(c.Request().Context(), doctorID, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) AddVisit(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var v Visit
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	visit, err := h.svc.AddVisit(c.Request().Context(), doctorID, id, &v)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, visit)
	case errors.Is(err, ErrPatientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) SearchVisits(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	var from, to *time.Time
	if s := c.QueryParam("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid from date")
		}
		from = &t
	}
	if s := c.QueryParam("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid to date")
		}
		to = &t
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.SearchVisits(c.Request().Context(), doctorID, c.QueryParam("q"), from, to, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetStats(c echo.Context) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return err
	}

	stats, err := h.svc.GetStats(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
