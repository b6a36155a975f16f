package market

import (
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
	return &Handler{service: service, logger: logger.With().Str("handler", "market").Logger()}
}

// RegisterRoutes registers market endpoints on the provided group.
//
//	POST /markets/check-availability                    - Serviceability check
//	GET  /states                                        - Live states
//	GET  /billing-cities/:id/places-of-service          - Supported visit locations
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/markets/check-availability", h.CheckAvailability)
	g.GET("/states", h.ListStates)
	g.GET("/billing-cities/:id/places-of-service", h.PlacesOfService)
}

func (h *Handler) CheckAvailability(c echo.Context) error {
	var in AvailabilityRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.CheckAvailability(c.Request().Context(), &in)
	if err != nil {
		h.logger.Error().Err(err).Msg("check market availability failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) ListStates(c echo.Context) error {
	out, err := h.service.ListStates(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list states failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) PlacesOfService(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.PlacesOfService(c.Request().Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("billing_city_id", id).Msg("list places of service failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}
