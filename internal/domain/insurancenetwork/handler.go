package insurancenetwork

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/pkg/pagination"
	"github.com/Rukio/nx-repo-sub005/pkg/response"
)

type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger.With().Str("handler", "insurancenetwork").Logger()}
}

// RegisterRoutes registers insurance network endpoints on the provided
// group.
//
//	POST /insurance-networks/search          - Search networks
//	GET  /insurance-networks/:id             - Fetch one network
//	GET  /insurance-classifications          - List the classification catalog
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/insurance-networks/search", h.Search)
	g.GET("/insurance-networks/:id", h.Get)
	g.GET("/insurance-classifications", h.ListClassifications)
}

func (h *Handler) Search(c echo.Context) error {
	var in SearchRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	page := pagination.FromContext(c)
	in.Limit = page.Limit
	in.Offset = page.Offset
	out, err := h.service.Search(c.Request().Context(), &in)
	if err != nil {
		h.logger.Error().Err(err).Msg("search insurance networks failed")
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
		h.logger.Error().Err(err).Int64("insurance_network_id", id).Msg("get insurance network failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) ListClassifications(c echo.Context) error {
	out, err := h.service.ListClassifications(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list insurance classifications failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}
