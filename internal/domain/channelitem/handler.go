package channelitem

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
	return &Handler{service: service, logger: logger.With().Str("handler", "channelitem").Logger()}
}

// RegisterRoutes registers channel item endpoints on the provided
// group.
//
//	GET  /channel-items      - Search by name
//	GET  /channel-items/:id  - Fetch one channel item
//	POST /channel-items      - Create a channel item
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/channel-items", h.Search)
	g.GET("/channel-items/:id", h.Get)
	g.POST("/channel-items", h.Create)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("channel_item_id", id).Msg("get channel item failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) Search(c echo.Context) error {
	out, err := h.service.Search(c.Request().Context(), c.QueryParam("search"), pagination.FromContext(c))
	if err != nil {
		h.logger.Error().Err(err).Msg("search channel items failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) Create(c echo.Context) error {
	var in ChannelItem
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.Create(c.Request().Context(), &in)
	if err != nil {
		h.logger.Error().Err(err).Msg("create channel item failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusCreated, response.Success(out))
}
