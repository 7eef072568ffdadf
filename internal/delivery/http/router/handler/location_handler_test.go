package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	domainerrors "beacon/internal/domain/errors"
	mocksusecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationHandler(t *testing.T) (*LocationHandler, *mocksusecase.MockLocationUsecase) {
	t.Helper()

	locationUC := mocksusecase.NewMockLocationUsecase(t)
	handler := &LocationHandler{
		locationUC: locationUC,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return handler, locationUC
}

func TestLocationHandler_ReportLocation(t *testing.T) {
	handler, locationUC := newLocationHandler(t)
	userID := uuid.New()
	expiresAt := time.Now().Add(5 * time.Minute)

	locationUC.EXPECT().
		ReportLocation(mock.Anything, userID, &usecase.ReportLocationInput{
			Latitude:       25.0330,
			Longitude:      121.5654,
			AccuracyMeters: 15,
		}).
		Return(&usecase.ReportLocationOutput{Shared: true, ExpiresAt: expiresAt}, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/location", `{"lat":25.0330,"lng":121.5654,"accuracy_m":15}`)
	c.Set("userID", userID)

	require.NoError(t, handler.ReportLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shared":true`)
	assert.Contains(t, rec.Body.String(), "expires_at")
}

func TestLocationHandler_ReportLocation_OutOfRange(t *testing.T) {
	handler, _ := newLocationHandler(t)

	c, rec := newEchoContext(t, http.MethodPost, "/location", `{"lat":200,"lng":0,"accuracy_m":10}`)
	c.Set("userID", uuid.New())

	require.NoError(t, handler.ReportLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLocationHandler_GetFriendsLocations(t *testing.T) {
	handler, locationUC := newLocationHandler(t)
	userID := uuid.New()
	friendID := uuid.New()

	locationUC.EXPECT().
		GetFriendsLocations(mock.Anything, userID).
		Return([]*usecase.FriendLocationOutput{
			{UserID: friendID, Latitude: 25.0173, Longitude: 121.5397, AccuracyMeters: 300, Timestamp: time.Now()},
		}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/location/friends", "")
	c.Set("userID", userID)

	require.NoError(t, handler.GetFriendsLocations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), friendID.String())
	assert.Contains(t, rec.Body.String(), `"accuracy_m":300`)
}

func TestLocationHandler_GetFriendLocation_NotVisible(t *testing.T) {
	handler, locationUC := newLocationHandler(t)
	userID := uuid.New()
	friendID := uuid.New()

	locationUC.EXPECT().
		GetFriendLocation(mock.Anything, userID, friendID).
		Return(nil, domainerrors.ErrLocationNotVisible)

	c, rec := newEchoContext(t, http.MethodGet, "/location/friends/"+friendID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(friendID.String())
	c.Set("userID", userID)

	require.NoError(t, handler.GetFriendLocation(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "LOCATION_NOT_VISIBLE")
}

func TestLocationHandler_GetFriendLocation_InvalidID(t *testing.T) {
	handler, _ := newLocationHandler(t)

	c, rec := newEchoContext(t, http.MethodGet, "/location/friends/xyz", "")
	c.SetParamNames("id")
	c.SetParamValues("xyz")
	c.Set("userID", uuid.New())

	require.NoError(t, handler.GetFriendLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
