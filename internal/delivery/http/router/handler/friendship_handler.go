// Package handler contains the HTTP request handlers for the API surface.
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

// FriendshipHandlerParams holds dependencies for FriendshipHandler, injected by Fx.
type FriendshipHandlerParams struct {
	fx.In

	FriendshipUC usecase.FriendshipUsecase
	Logger       *slog.Logger
}

// FriendshipHandler holds dependencies for friendship-related handlers
type FriendshipHandler struct {
	friendshipUC usecase.FriendshipUsecase
	logger       *slog.Logger
}

// NewFriendshipHandler is the constructor for FriendshipHandler
func NewFriendshipHandler(params FriendshipHandlerParams) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipUC: params.FriendshipUC,
		logger:       params.Logger,
	}
}

// SendFriendRequestRequest represents the request body for sending a friend request
type SendFriendRequestRequest struct {
	PeerID uuid.UUID `json:"peer_id" validate:"required"`
}

// UpdateShareSettingsRequest represents the request body for updating the
// per-friend sharing flags on the caller's own edge
type UpdateShareSettingsRequest struct {
	ShareLocation *bool `json:"share_location,omitempty"`
	CloseFriend   *bool `json:"close_friend,omitempty"`
}

// SendRequest handles creating a new friend request
func (h *FriendshipHandler) SendRequest(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req SendFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.friendshipUC.SendRequest(c.Request().Context(), userID, &usecase.SendFriendRequestInput{
		PeerID: req.PeerID,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Friend request sent successfully")
}

// AcceptRequest handles accepting a pending friend request
func (h *FriendshipHandler) AcceptRequest(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.friendshipUC.AcceptRequest(c.Request().Context(), userID, requestID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "accepted"}, "Friend request accepted successfully")
}

// DeclineRequest handles declining a pending friend request
func (h *FriendshipHandler) DeclineRequest(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.friendshipUC.DeclineRequest(c.Request().Context(), userID, requestID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "declined"}, "Friend request declined successfully")
}

// ListPendingRequests handles retrieving the caller's incoming friend requests
func (h *FriendshipHandler) ListPendingRequests(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendshipUC.ListPendingRequests(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Pending friend requests retrieved successfully")
}

// ListFriends handles retrieving the caller's friend list
func (h *FriendshipHandler) ListFriends(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	friends, err := h.friendshipUC.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, friends, "Friends retrieved successfully")
}

// RemoveFriend handles dissolving an established friendship
func (h *FriendshipHandler) RemoveFriend(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friend ID")
	}

	if err := h.friendshipUC.RemoveFriend(c.Request().Context(), userID, friendID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "removed"}, "Friend removed successfully")
}

// UpdateShareSettings handles toggling the caller's sharing flags toward one friend
func (h *FriendshipHandler) UpdateShareSettings(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid friend ID")
	}

	var req UpdateShareSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share settings input")
	}

	friend, err := h.friendshipUC.UpdateShareSettings(c.Request().Context(), userID, friendID, &usecase.UpdateShareSettingsInput{
		ShareLocation: req.ShareLocation,
		CloseFriend:   req.CloseFriend,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, friend, "Share settings updated successfully")
}

// GenerateInviteQR handles generating the caller's friend invite QR code
func (h *FriendshipHandler) GenerateInviteQR(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	png, err := h.friendshipUC.GenerateInviteQR(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// getUserID extracts the user ID from the context
func (h *FriendshipHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *FriendshipHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
