package selfschedule

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/sessioncache"
	"github.com/Rukio/nx-repo-sub005/pkg/response"
)

// Handler provides the self-schedule endpoints consumed by the web
// flow.
type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger.With().Str("handler", "selfschedule").Logger()}
}

// RegisterRoutes registers self-schedule endpoints on the provided
// group.
//
//	POST   /self-schedule/care-requests           - Create the bundled care request
//	GET    /self-schedule/user-cache/:userId      - Read the saved form state
//	POST   /self-schedule/user-cache/:userId      - Save the form state
//	POST   /self-schedule/notifications/:userId   - Schedule a follow-up notification
//	DELETE /self-schedule/notifications/:jobId    - Cancel a scheduled notification
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/self-schedule/care-requests", h.Create)
	g.GET("/self-schedule/user-cache/:userId", h.GetUserCache)
	g.POST("/self-schedule/user-cache/:userId", h.SetUserCache)
	g.POST("/self-schedule/notifications/:userId", h.CreateNotification)
	g.DELETE("/self-schedule/notifications/:jobId", h.DeleteNotification)
}

func (h *Handler) Create(c echo.Context) error {
	var in OssCareRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.Create(c.Request().Context(), &in)
	if err != nil {
		h.logger.Error().Err(err).Msg("create self schedule care request failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusCreated, response.Success(out))
}

// GetUserCache returns the saved form state; an expired or never-saved
// cache is a successful response with null data, not an error.
func (h *Handler) GetUserCache(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, response.Error(errors.New("user id is required")))
	}
	cache, err := h.service.FetchUserCache(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("fetch user cache failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(cache))
}

func (h *Handler) SetUserCache(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, response.Error(errors.New("user id is required")))
	}
	var in sessioncache.OSSUserCache
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	if err := h.service.SaveUserCache(c.Request().Context(), userID, &in); err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("save user cache failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.SuccessOnly())
}

func (h *Handler) CreateNotification(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, response.Error(errors.New("user id is required")))
	}
	out, err := h.service.CreateNotification(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNoCachedCareRequest) {
			return c.JSON(http.StatusNotFound, response.Error(err))
		}
		h.logger.Error().Err(err).Str("user_id", userID).Msg("create notification failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusCreated, response.Success(out))
}

func (h *Handler) DeleteNotification(c echo.Context) error {
	jobID := c.Param("jobId")
	if jobID == "" {
		return c.JSON(http.StatusBadRequest, response.Error(errors.New("job id is required")))
	}
	if err := h.service.DeleteNotification(c.Request().Context(), jobID); err != nil {
		h.logger.Error().Err(err).Str("job_id", jobID).Msg("delete notification failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.SuccessOnly())
}
