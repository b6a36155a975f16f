package riskstratification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/pkg/response"
)

type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger.With().Str("handler", "riskstratification").Logger()}
}

// RegisterRoutes registers risk stratification endpoints on the
// provided group.
//
//	GET /risk-stratification-protocols                      - List the catalog
//	GET /risk-stratification-protocols/:id                  - Fetch one protocol with questions
//	GET /care-requests/:id/secondary-screenings             - List completed screenings
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/risk-stratification-protocols", h.List)
	g.GET("/risk-stratification-protocols/:id", h.Get)
	g.GET("/care-requests/:id/secondary-screenings", h.SecondaryScreenings)
}

func (h *Handler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list risk stratification protocols failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("protocol_id", id).Msg("get risk stratification protocol failed")
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return c.JSON(http.StatusNotFound, response.Error(err))
		}
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) SecondaryScreenings(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.SecondaryScreenings(c.Request().Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("care_request_id", id).Msg("list secondary screenings failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}
