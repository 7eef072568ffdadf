package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest represents the request body for reporting a position
type ReportLocationRequest struct {
	Latitude       float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude      float64 `json:"lng" validate:"min=-180,max=180"`
	AccuracyMeters float64 `json:"accuracy_m" validate:"min=0"`
}

// ReportLocation handles storing the caller's latest position
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.locationUC.ReportLocation(c.Request().Context(), userID, &usecase.ReportLocationInput{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Location reported successfully")
}

// GetFriendsLocations handles retrieving every friend position visible to the caller
func (h *LocationHandler) GetFriendsLocations(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	locations, err := h.locationUC.GetFriendsLocations(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Friend locations retrieved successfully")
}

// GetFriendLocation handles retrieving a single friend's visible position
func (h *LocationHandler) GetFriendLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friend ID")
	}

	location, err := h.locationUC.GetFriendLocation(c.Request().Context(), userID, friendID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Friend location retrieved successfully")
}

// getUserID extracts the user ID from the context
func (h *LocationHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
