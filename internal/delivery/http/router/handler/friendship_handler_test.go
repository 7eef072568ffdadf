package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beacon/internal/delivery/http/validator"
	domainerrors "beacon/internal/domain/errors"
	mocksusecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFriendshipHandler(t *testing.T) (*FriendshipHandler, *mocksusecase.MockFriendshipUsecase) {
	t.Helper()

	friendshipUC := mocksusecase.NewMockFriendshipUsecase(t)
	handler := &FriendshipHandler{
		friendshipUC: friendshipUC,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return handler, friendshipUC
}

func newEchoContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestFriendshipHandler_SendRequest(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	peerID := uuid.New()

	friendshipUC.EXPECT().
		SendRequest(mock.Anything, userID, &usecase.SendFriendRequestInput{PeerID: peerID}).
		Return(&usecase.FriendRequestOutput{
			RequestID:   uuid.New(),
			RequesterID: userID,
			PeerID:      peerID,
			Status:      "pending",
			CreatedAt:   time.Now(),
		}, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests", `{"peer_id":"`+peerID.String()+`"}`)
	c.Set("userID", userID)

	require.NoError(t, handler.SendRequest(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestFriendshipHandler_SendRequest_Conflict(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	peerID := uuid.New()

	friendshipUC.EXPECT().
		SendRequest(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrFriendRequestConflict)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests", `{"peer_id":"`+peerID.String()+`"}`)
	c.Set("userID", userID)

	require.NoError(t, handler.SendRequest(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "FRIEND_REQUEST_CONFLICT")
}

func TestFriendshipHandler_SendRequest_InvalidBody(t *testing.T) {
	handler, _ := newFriendshipHandler(t)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests", `{"peer_id":"not-a-uuid"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, handler.SendRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFriendshipHandler_SendRequest_MissingAuth(t *testing.T) {
	handler, _ := newFriendshipHandler(t)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests", `{}`)

	_, err := handler.getUserID(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFriendshipHandler_AcceptRequest(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	requestID := uuid.New()

	friendshipUC.EXPECT().
		AcceptRequest(mock.Anything, userID, requestID).
		Return(nil)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests/"+requestID.String()+"/accept", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("userID", userID)

	require.NoError(t, handler.AcceptRequest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "accepted")
}

func TestFriendshipHandler_AcceptRequest_NotRecipient(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	requestID := uuid.New()

	friendshipUC.EXPECT().
		AcceptRequest(mock.Anything, userID, requestID).
		Return(domainerrors.ErrNotRequestRecipient)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests/"+requestID.String()+"/accept", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("userID", userID)

	require.NoError(t, handler.AcceptRequest(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_REQUEST_RECIPIENT")
}

func TestFriendshipHandler_AcceptRequest_InvalidID(t *testing.T) {
	handler, _ := newFriendshipHandler(t)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests/abc/accept", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	c.Set("userID", uuid.New())

	require.NoError(t, handler.AcceptRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFriendshipHandler_DeclineRequest(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	requestID := uuid.New()

	friendshipUC.EXPECT().
		DeclineRequest(mock.Anything, userID, requestID).
		Return(nil)

	c, rec := newEchoContext(t, http.MethodPost, "/friends/requests/"+requestID.String()+"/decline", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("userID", userID)

	require.NoError(t, handler.DeclineRequest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFriendshipHandler_ListFriends(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	friendID := uuid.New()

	friendshipUC.EXPECT().
		ListFriends(mock.Anything, userID).
		Return([]*usecase.FriendOutput{
			{FriendID: friendID, Name: "Ying-Hua", ShareLocation: true, FriendsSince: time.Now()},
		}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/friends", "")
	c.Set("userID", userID)

	require.NoError(t, handler.ListFriends(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), friendID.String())
	assert.Contains(t, rec.Body.String(), "Ying-Hua")
}

func TestFriendshipHandler_RemoveFriend(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	friendID := uuid.New()

	friendshipUC.EXPECT().
		RemoveFriend(mock.Anything, userID, friendID).
		Return(nil)

	c, rec := newEchoContext(t, http.MethodDelete, "/friends/"+friendID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(friendID.String())
	c.Set("userID", userID)

	require.NoError(t, handler.RemoveFriend(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFriendshipHandler_UpdateShareSettings(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()
	friendID := uuid.New()

	friendshipUC.EXPECT().
		UpdateShareSettings(mock.Anything, userID, friendID, mock.MatchedBy(func(input *usecase.UpdateShareSettingsInput) bool {
			return input.ShareLocation != nil && !*input.ShareLocation && input.CloseFriend == nil
		})).
		Return(&usecase.FriendOutput{FriendID: friendID, ShareLocation: false}, nil)

	c, rec := newEchoContext(t, http.MethodPatch, "/friends/"+friendID.String(), `{"share_location":false}`)
	c.SetParamNames("id")
	c.SetParamValues(friendID.String())
	c.Set("userID", userID)

	require.NoError(t, handler.UpdateShareSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFriendshipHandler_GenerateInviteQR(t *testing.T) {
	handler, friendshipUC := newFriendshipHandler(t)
	userID := uuid.New()

	friendshipUC.EXPECT().
		GenerateInviteQR(mock.Anything, userID).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/friends/invite/qr", "")
	c.Set("userID", userID)

	require.NoError(t, handler.GenerateInviteQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
