package carerequest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/pkg/response"
)

// Handler provides the public care request endpoints.
type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger.With().Str("handler", "carerequest").Logger()}
}

// RegisterRoutes registers care request endpoints on the provided group.
//
//	POST  /care-requests                                - Create a care request
//	GET   /care-requests/:id                            - Fetch one care request
//	PUT   /care-requests/:id                            - Replace a care request
//	PATCH /care-requests/:id                            - Partially update a care request
//	PATCH /care-requests/:id/status                     - Transition the request status
//	PATCH /care-requests/:id/accept-if-feasible         - Accept when a team fits
//	POST  /care-requests/:id/eta-ranges                 - Record an ETA range
//	GET   /care-requests/:id/time-windows-availability  - List bookable windows
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/care-requests", h.Create)
	g.GET("/care-requests/:id", h.Get)
	g.PUT("/care-requests/:id", h.Update)
	g.PATCH("/care-requests/:id", h.Patch)
	g.PATCH("/care-requests/:id/status", h.UpdateStatus)
	g.PATCH("/care-requests/:id/accept-if-feasible", h.AcceptIfFeasible)
	g.POST("/care-requests/:id/eta-ranges", h.CreateEtaRange)
	g.GET("/care-requests/:id/time-windows-availability", h.TimeWindowsAvailability)
}

func (h *Handler) Create(c echo.Context) error {
	var in CareRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.Create(c.Request().Context(), &in)
	if err != nil {
		h.logger.Error().Err(err).Msg("create care request failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusCreated, response.Success(out))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("care_request_id", id).Msg("get care request failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *Handler) Update(c echo.Context) error {
	return h.modify(c, "update care request failed", h.service.Update)
}

func (h *Handler) Patch(c echo.Context) error {
	return h.modify(c, "patch care request failed", h.service.Patch)
}

func (h *Handler) modify(c echo.Context, logMsg string, call func(ctx context.Context, id int64, in *CareRequest) (*CareRequest, error)) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	var in CareRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := call(c.Request().Context(), id, &in)
	if err != nil {
		h.logger.Error().Err(err).Int64("care_request_id", id).Msg(logMsg)
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

// UpdateStatus is the one endpoint family that does not collapse
// upstream failures to 500: Station's status code is forwarded and its
// field errors are flattened into the errors array.
func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	var in UpdateStatusPayload
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	if err := h.service.UpdateStatus(c.Request().Context(), id, &in); err != nil {
		h.logger.Error().Err(err).Int64("care_request_id", id).Msg("update care request status failed")
		if se, ok := response.AsStationError(err); ok {
			return c.JSON(se.StatusCode, response.FieldErrorEnvelope{Success: false, Errors: se.Flatten()})
		}
		return c.JSON(response.StatusOf(err), response.Error(err))
	}
	return c.JSON(http.StatusOK, response.SuccessOnly())
}

func (h *Handler) AcceptIfFeasible(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	var in AcceptIfFeasiblePayload
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	if err := h.service.AcceptIfFeasible(c.Request().Context(), id, &in); err != nil {
		h.logger.Error().Err(err).Int64("care_request_id", id).Msg("accept if feasible failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.SuccessOnly())
}

func (h *Handler) CreateEtaRange(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	var in EtaRange
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.CreateEtaRange(c.Request().Context(), id, &in)
	if err != nil {
		h.logger.Error().Err(err).Int64("care_request_id", id).Msg("create eta range failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusCreated, response.Success(out))
}

func (h *Handler) TimeWindowsAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err))
	}
	out, err := h.service.TimeWindowsAvailability(c.Request().Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("care_request_id", id).Msg("time windows availability failed")
		return c.JSON(http.StatusInternalServerError, response.Error(err))
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
